package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/spec-kit/console-service/internal/events"
	"github.com/spec-kit/console-service/internal/repository"
	apperrors "github.com/spec-kit/console-service/pkg/util/errorutil"
)

// fakeSessionRepo keeps session keys in a map and can be switched into a
// failing mode to exercise persistence-failure paths.
type fakeSessionRepo struct {
	values map[string]string
	fail   bool
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{values: make(map[string]string)}
}

func (f *fakeSessionRepo) Get(ctx context.Context, key string) (string, error) {
	if f.fail {
		return "", errors.New("store unavailable")
	}
	return f.values[key], nil
}

func (f *fakeSessionRepo) Set(ctx context.Context, key, value string) error {
	if f.fail {
		return errors.New("store unavailable")
	}
	f.values[key] = value
	return nil
}

// fakeGenerator records prompts and replies with a canned response or a
// configured error.
type fakeGenerator struct {
	calls    int
	lastSeen string
	response string
	err      error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastSeen = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

// captureDispatcher records every published event.
type captureDispatcher struct {
	published []events.Event
}

func (c *captureDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (c *captureDispatcher) Publish(ctx context.Context, event events.Event) error {
	c.published = append(c.published, event)
	return nil
}

func (c *captureDispatcher) ofType(eventType events.EventType) []events.Event {
	var out []events.Event
	for _, e := range c.published {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

func testLogger() *zap.Logger { return zap.NewNop() }

func seededClients() repository.ClientRepository {
	return repository.NewMemoryClientRepository(repository.SeedClients())
}

func domainCode(err error) string {
	de := apperrors.ToDomainError(err)
	if de == nil {
		return ""
	}
	return de.Code
}
