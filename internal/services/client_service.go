package services

import (
	"errors"
	"fmt"
	"strings"

	"geronimocrm/internal/models"
	"geronimocrm/internal/repositories"
)

type ClientService struct {
	Repo     *repositories.ClientRepository
	Contacts *repositories.ContactRepository
}

func NewClientService(repo *repositories.ClientRepository, contacts *repositories.ContactRepository) *ClientService {
	return &ClientService{Repo: repo, Contacts: contacts}
}

func (s *ClientService) Create(client *models.Client) (int64, error) {
	client.CompanyName = strings.TrimSpace(client.CompanyName)
	if client.CompanyName == "" {
		return 0, errors.New("company name is required")
	}
	if client.Sector != "" && !models.ValidSector(client.Sector) {
		return 0, fmt.Errorf("unknown sector %q", client.Sector)
	}
	if client.Region != "" && !models.ValidRegion(client.Region) {
		return 0, fmt.Errorf("unknown region %q", client.Region)
	}
	client.Location = strings.TrimSpace(client.Location)
	return s.Repo.Create(client)
}

func (s *ClientService) GetByID(id int) (*models.Client, error) {
	return s.Repo.GetByID(id)
}

// Search lists all clients newest first and, when q is non-empty,
// keeps rows whose company name, sector, region or location contains
// q case-insensitively. A missing location counts as empty. The match
// runs in-process over the fetched table, as the original page did.
func (s *ClientService) Search(q string) ([]*models.Client, error) {
	clients, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return clients, nil
	}
	ql := strings.ToLower(q)
	var matched []*models.Client
	for _, c := range clients {
		if strings.Contains(strings.ToLower(c.CompanyName), ql) ||
			strings.Contains(strings.ToLower(c.Sector), ql) ||
			strings.Contains(strings.ToLower(c.Region), ql) ||
			strings.Contains(strings.ToLower(c.Location), ql) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *ClientService) AddContact(contact *models.Contact) (int64, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	if contact.Name == "" {
		return 0, errors.New("contact name is required")
	}
	client, err := s.Repo.GetByID(contact.ClientID)
	if err != nil {
		return 0, err
	}
	if client == nil {
		return 0, errors.New("client not found")
	}
	return s.Contacts.Create(contact)
}

func (s *ClientService) ListContacts(clientID int) ([]*models.Contact, error) {
	client, err := s.Repo.GetByID(clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, errors.New("client not found")
	}
	return s.Contacts.ListByClient(clientID)
}
