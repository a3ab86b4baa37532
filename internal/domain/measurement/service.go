package measurement

import (
	"context"
	"sync"
	"time"

	"garments-api/internal/domain/identity"
	"garments-api/pkg/idgen"
)

type Service struct {
	repo        Repository
	users       UserResolver
	sections    SectionsCache
	sectionsTTL time.Duration

	// sectionsMu orders cache writes against invalidation. sectionsGen
	// changes on every layout write, so a load that overlapped one is not
	// stored.
	sectionsMu  sync.Mutex
	sectionsGen uint64
}

func NewService(repo Repository, users UserResolver) *Service {
	return &Service{repo: repo, users: users, sections: noopSectionsCache{}}
}

// WithSectionsCache makes TypeSections serve layouts from cache for ttl.
// A non-positive ttl keeps caching off.
func (s *Service) WithSectionsCache(cache SectionsCache, ttl time.Duration) *Service {
	if cache == nil || ttl <= 0 {
		return s
	}
	s.sections = cache
	s.sectionsTTL = ttl
	return s
}

func (s *Service) CreateType(ctx context.Context, input CreateTypeInput) (*Type, error) {
	measurementType := Type{
		ID:          idgen.New(idgen.PrefixMeasurementType),
		Name:        input.Name,
		Description: input.Description,
	}
	if err := s.repo.CreateType(ctx, &measurementType); err != nil {
		return nil, err
	}
	return &measurementType, nil
}

func (s *Service) GetType(ctx context.Context, id string) (*Type, error) {
	return s.repo.GetType(ctx, id)
}

func (s *Service) ListTypes(ctx context.Context) ([]Type, error) {
	return s.repo.ListTypes(ctx)
}

func (s *Service) CreateSection(ctx context.Context, input CreateSectionInput) (*Section, error) {
	section := Section{
		ID:                idgen.New(idgen.PrefixMeasurementSection),
		MeasurementTypeID: input.TypeID,
		Title:             input.Title,
		DisplayOrder:      input.DisplayOrder,
	}
	if err := s.repo.CreateSection(ctx, &section); err != nil {
		return nil, err
	}
	s.invalidateSections(func() { s.sections.DeleteByTypeID(input.TypeID) })
	return &section, nil
}

func (s *Service) CreateField(ctx context.Context, input CreateFieldInput) (*Field, error) {
	field := Field{
		ID:           idgen.New(idgen.PrefixMeasurementField),
		SectionID:    input.SectionID,
		Name:         input.Name,
		Unit:         input.Unit,
		DisplayOrder: input.DisplayOrder,
	}
	if err := s.repo.CreateField(ctx, &field); err != nil {
		return nil, err
	}
	// The owning type is not known here.
	s.invalidateSections(s.sections.Clear)
	return &field, nil
}

// TypeSections returns the sections of typeID, each with its fields. An
// unknown type yields an empty list.
func (s *Service) TypeSections(ctx context.Context, typeID string) ([]SectionWithFields, error) {
	if cached, ok := s.sections.GetByTypeID(typeID); ok {
		return cached, nil
	}
	gen := s.sectionsGeneration()
	result, err := s.loadSections(ctx, typeID)
	if err != nil {
		return nil, err
	}

	s.sectionsMu.Lock()
	if s.sectionsGen == gen {
		s.sections.SetByTypeID(typeID, result, s.sectionsTTL)
	}
	s.sectionsMu.Unlock()
	return result, nil
}

func (s *Service) sectionsGeneration() uint64 {
	s.sectionsMu.Lock()
	defer s.sectionsMu.Unlock()
	return s.sectionsGen
}

func (s *Service) invalidateSections(evict func()) {
	s.sectionsMu.Lock()
	defer s.sectionsMu.Unlock()
	s.sectionsGen++
	evict()
}

func (s *Service) loadSections(ctx context.Context, typeID string) ([]SectionWithFields, error) {
	sections, err := s.repo.ListSections(ctx, typeID)
	if err != nil {
		return nil, err
	}
	result := make([]SectionWithFields, 0, len(sections))
	if len(sections) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(sections))
	index := make(map[string]int, len(sections))
	for i, section := range sections {
		ids = append(ids, section.ID)
		index[section.ID] = i
		result = append(result, SectionWithFields{Section: section, Fields: make([]Field, 0)})
	}

	fields, err := s.repo.ListFields(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, field := range fields {
		i, ok := index[field.SectionID]
		if !ok {
			continue
		}
		result[i].Fields = append(result[i].Fields, field)
	}
	return result, nil
}

func (s *Service) CreateMeasurement(ctx context.Context, input CreateMeasurementInput) (*Measurement, error) {
	userType, err := identity.ParseUserType(input.UserType)
	if err != nil {
		return nil, err
	}
	if len(input.Values) == 0 {
		return nil, ErrValuesRequired
	}
	if _, err := s.users.ResolveUser(ctx, userType, input.UserID); err != nil {
		return nil, err
	}

	measurement := Measurement{
		ID:                idgen.New(idgen.PrefixMeasurement),
		UserID:            input.UserID,
		UserType:          string(userType),
		MeasurementTypeID: input.MeasurementTypeID,
	}
	values := collapseValues(measurement.ID, input.Values, func() string {
		return idgen.New(idgen.PrefixMeasurementValue)
	})

	err = s.repo.Transaction(ctx, func(repo Repository) error {
		if err := repo.CreateMeasurement(ctx, &measurement); err != nil {
			return err
		}
		if len(values) == 0 {
			return nil
		}
		return repo.CreateValues(ctx, values)
	})
	if err != nil {
		return nil, err
	}
	return &measurement, nil
}

// UpdateMeasurement applies values to measurement id. Entries with an id
// update that value; entries with a field_id upsert by field; the rest are
// skipped. updated_at is bumped even when nothing changed.
func (s *Service) UpdateMeasurement(ctx context.Context, id string, values []ValueInput) error {
	return s.repo.Transaction(ctx, func(repo Repository) error {
		if _, err := repo.GetMeasurement(ctx, id); err != nil {
			return err
		}

		for _, input := range values {
			if input.Value == nil {
				continue
			}
			switch {
			case input.ID != "":
				if err := repo.UpdateValue(ctx, id, input.ID, *input.Value); err != nil {
					return err
				}
			case input.FieldID != "":
				value := Value{
					ID:            idgen.New(idgen.PrefixMeasurementValue),
					MeasurementID: id,
					FieldID:       input.FieldID,
					Value:         *input.Value,
				}
				if err := repo.UpsertValue(ctx, &value); err != nil {
					return err
				}
			}
		}

		return repo.TouchMeasurement(ctx, id)
	})
}

func (s *Service) DeleteMeasurement(ctx context.Context, id string) error {
	return s.repo.Transaction(ctx, func(repo Repository) error {
		if err := repo.DeleteValues(ctx, id); err != nil {
			return err
		}
		return repo.DeleteMeasurement(ctx, id)
	})
}

func (s *Service) GetDetail(ctx context.Context, id string) (*Detail, error) {
	header, err := s.repo.GetMeasurement(ctx, id)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.ListValues(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	return &Detail{Header: *header, Sections: GroupBySection(rows)}, nil
}

func (s *Service) ListUserMeasurements(ctx context.Context, userID, userType string) ([]UserMeasurement, error) {
	parsed, err := identity.ParseUserType(userType)
	if err != nil {
		return nil, err
	}

	headers, err := s.repo.ListUserMeasurements(ctx, userID, string(parsed))
	if err != nil {
		return nil, err
	}
	result := make([]UserMeasurement, 0, len(headers))
	if len(headers) == 0 {
		return result, nil
	}

	ids := make([]string, 0, len(headers))
	index := make(map[string]int, len(headers))
	for i, header := range headers {
		ids = append(ids, header.ID)
		index[header.ID] = i
		result = append(result, UserMeasurement{Header: header, Values: make([]ValueRow, 0)})
	}

	rows, err := s.repo.ListValues(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if i, ok := index[row.MeasurementID]; ok {
			result[i].Values = append(result[i].Values, row)
		}
	}
	return result, nil
}

func (s *Service) ListOrgMeasurements(ctx context.Context, orgID string) ([]Header, error) {
	return s.repo.ListOrgMeasurements(ctx, orgID)
}

func (s *Service) ListAllMeasurements(ctx context.Context) ([]Header, error) {
	return s.repo.ListAllMeasurements(ctx)
}
