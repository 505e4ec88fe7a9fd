package services

import (
	"fmt"

	"github.com/mrlokans/gamesreviewer/internal/entities"
)

type RequirementService struct {
	recorder
	requirements RequirementStore
}

func NewRequirementService(requirements RequirementStore, audit AuditRecorder) *RequirementService {
	return &RequirementService{recorder: recorder{audit: audit}, requirements: requirements}
}

// GetAllRequirements returns every profile ordered by id.
func (s *RequirementService) GetAllRequirements() ([]entities.SystemRequirement, error) {
	reqs, err := s.requirements.FindAll()
	if err != nil {
		return nil, err
	}
	return sortByID(reqs, func(r entities.SystemRequirement) int64 { return r.ID }), nil
}

func (s *RequirementService) GetRequirementByID(id int64) (entities.SystemRequirement, bool, error) {
	return s.requirements.FindByID(id)
}

func (s *RequirementService) GetRequirementsByGameID(gameID int64) ([]entities.SystemRequirement, error) {
	return s.requirements.FindByGameID(gameID)
}

func (s *RequirementService) CreateRequirement(req entities.SystemRequirement) (int64, error) {
	id, err := s.requirements.Create(req)
	s.record(entities.AuditEventCreate, EntityRequirement, id,
		fmt.Sprintf("Created requirement profile %d for game %d", req.TypeID, req.GameID), err)
	return id, err
}

func (s *RequirementService) UpdateRequirement(req entities.SystemRequirement) error {
	err := s.requirements.Update(req)
	s.record(entities.AuditEventUpdate, EntityRequirement, req.ID, fmt.Sprintf("Updated requirement profile %d", req.ID), err)
	return err
}

func (s *RequirementService) DeleteRequirement(id int64) error {
	err := s.requirements.Delete(id)
	s.record(entities.AuditEventDelete, EntityRequirement, id, fmt.Sprintf("Deleted requirement profile %d", id), err)
	return err
}

// RequirementTypeService exposes the requirement tier lookup table.
type RequirementTypeService struct {
	types RequirementTypeReader
}

func NewRequirementTypeService(types RequirementTypeReader) *RequirementTypeService {
	return &RequirementTypeService{types: types}
}

func (s *RequirementTypeService) GetAllRequirementTypes() ([]entities.SystemRequirementType, error) {
	types, err := s.types.FindAll()
	if err != nil {
		return nil, err
	}
	return sortByID(types, func(t entities.SystemRequirementType) int64 { return t.ID }), nil
}

func (s *RequirementTypeService) GetRequirementTypeByID(id int64) (entities.SystemRequirementType, bool, error) {
	return s.types.FindByID(id)
}
