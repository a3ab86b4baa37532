package inmemory

import (
	"sync"
	"time"

	measurementdomain "garments-api/internal/domain/measurement"
)

// SectionsCache is a process-local TTL cache of measurement type layouts.
type SectionsCache struct {
	mu    sync.RWMutex
	items map[string]sectionsItem
}

type sectionsItem struct {
	value     []measurementdomain.SectionWithFields
	expiresAt time.Time
}

func NewSectionsCache() *SectionsCache {
	return &SectionsCache{
		items: make(map[string]sectionsItem),
	}
}

func (c *SectionsCache) GetByTypeID(typeID string) ([]measurementdomain.SectionWithFields, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[typeID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[typeID]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, typeID)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneSections(item.value), true
}

func (c *SectionsCache) SetByTypeID(typeID string, sections []measurementdomain.SectionWithFields, ttl time.Duration) {
	if ttl <= 0 {
		c.DeleteByTypeID(typeID)
		return
	}

	c.mu.Lock()
	c.items[typeID] = sectionsItem{
		value:     cloneSections(sections),
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *SectionsCache) DeleteByTypeID(typeID string) {
	c.mu.Lock()
	delete(c.items, typeID)
	c.mu.Unlock()
}

func (c *SectionsCache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]sectionsItem)
	c.mu.Unlock()
}

// cloneSections copies the layout so callers cannot mutate cached fields.
func cloneSections(sections []measurementdomain.SectionWithFields) []measurementdomain.SectionWithFields {
	if sections == nil {
		return nil
	}
	cloned := make([]measurementdomain.SectionWithFields, len(sections))
	for i := range sections {
		cloned[i].Section = sections[i].Section
		cloned[i].Fields = make([]measurementdomain.Field, len(sections[i].Fields))
		for j, field := range sections[i].Fields {
			if field.Unit != nil {
				unit := *field.Unit
				field.Unit = &unit
			}
			cloned[i].Fields[j] = field
		}
	}
	return cloned
}
