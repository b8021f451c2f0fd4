package domain

// AudienceRecord is one entry in the point-based data catalog.
// PhoneNumber is withheld from search results until the record has been
// purchased by the requesting client.
type AudienceRecord struct {
	ID          string
	Name        string
	Country     string
	City        string
	Education   string
	Job         string
	PhoneNumber string
}
