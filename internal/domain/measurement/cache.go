package measurement

import "time"

// SectionsCache holds the section layout of measurement types. Layouts only
// change through CreateSection and CreateField, which invalidate them.
type SectionsCache interface {
	GetByTypeID(typeID string) ([]SectionWithFields, bool)
	SetByTypeID(typeID string, sections []SectionWithFields, ttl time.Duration)
	DeleteByTypeID(typeID string)
	Clear()
}

type noopSectionsCache struct{}

func (noopSectionsCache) GetByTypeID(string) ([]SectionWithFields, bool) {
	return nil, false
}

func (noopSectionsCache) SetByTypeID(string, []SectionWithFields, time.Duration) {}

func (noopSectionsCache) DeleteByTypeID(string) {}

func (noopSectionsCache) Clear() {}
