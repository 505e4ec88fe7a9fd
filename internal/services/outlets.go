package services

import (
	"fmt"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

type MediaOutletService struct {
	recorder
	outlets MediaOutletStore
}

func NewMediaOutletService(outlets MediaOutletStore, audit AuditRecorder) *MediaOutletService {
	return &MediaOutletService{recorder: recorder{audit: audit}, outlets: outlets}
}

func (s *MediaOutletService) GetAllMediaOutlets() ([]entities.MediaOutlet, error) {
	outlets, err := s.outlets.FindAll()
	if err != nil {
		return nil, err
	}
	return sortByID(outlets, func(o entities.MediaOutlet) int64 { return o.ID }), nil
}

func (s *MediaOutletService) GetMediaOutletByID(id int64) (entities.MediaOutlet, bool, error) {
	return s.outlets.FindByID(id)
}

func (s *MediaOutletService) CreateMediaOutlet(outlet entities.MediaOutlet) (int64, error) {
	id, err := s.outlets.Create(outlet)
	s.record(entities.AuditEventCreate, EntityMediaOutlet, id, "Created media outlet: "+outlet.Name, err)
	return id, err
}

func (s *MediaOutletService) UpdateMediaOutlet(outlet entities.MediaOutlet) error {
	err := s.outlets.Update(outlet)
	s.record(entities.AuditEventUpdate, EntityMediaOutlet, outlet.ID, "Updated media outlet: "+outlet.Name, err)
	return err
}

func (s *MediaOutletService) DeleteMediaOutlet(id int64) error {
	err := s.outlets.Delete(id)
	s.record(entities.AuditEventDelete, EntityMediaOutlet, id, fmt.Sprintf("Deleted media outlet %d", id), err)
	return err
}
