// Package state holds the in-memory working copy of the CV and
// Portfolio collections plus one current-selection pointer per entity
// type. The collection is the single source of truth; "current" is an
// id lookup into it, never an independent copy. Every operation is
// atomic with respect to the in-memory tree.
package state

import (
	"sync"

	"go-cvbuilder-backend/internal/domain"
)

type CVStore struct {
	mu        sync.RWMutex
	cvs       []domain.CV
	currentID string
	now       func() string
}

func NewCVStore() *CVStore {
	return &CVStore{now: domain.NowISO}
}

// Load bulk-replaces the collection, e.g. after reading from
// persistence. The current pointer is left untouched.
func (s *CVStore) Load(cvs []domain.CV) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cvs = cloneCVs(cvs)
}

func (s *CVStore) All() []domain.CV {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCVs(s.cvs)
}

func (s *CVStore) Get(id string) (domain.CV, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.cvs {
		if s.cvs[i].ID == id {
			return cloneCV(s.cvs[i]), true
		}
	}
	return domain.CV{}, false
}

// Create appends the CV and selects it as current.
func (s *CVStore) Create(cv domain.CV) domain.CV {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cvs = append(s.cvs, cloneCV(cv))
	s.currentID = cv.ID
	return cv
}

// Update replaces the CV with the same id and refreshes updatedAt.
// A missing id is a no-op, not an error.
func (s *CVStore) Update(cv domain.CV) (domain.CV, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cvs {
		if s.cvs[i].ID == cv.ID {
			next := cloneCV(cv)
			next.UpdatedAt = s.now()
			s.cvs[i] = next
			return cloneCV(next), true
		}
	}
	return domain.CV{}, false
}

// Delete removes the CV by id and clears the current pointer if it
// matched. Deleting a non-existent id leaves the collection unchanged.
func (s *CVStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cvs[:0]
	for i := range s.cvs {
		if s.cvs[i].ID != id {
			kept = append(kept, s.cvs[i])
		}
	}
	s.cvs = kept
	if s.currentID == id {
		s.currentID = ""
	}
}

// SetCurrent selects a CV from the already-loaded collection. When the
// id is not found the pointer is cleared.
func (s *CVStore) SetCurrent(id string) (domain.CV, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cvs {
		if s.cvs[i].ID == id {
			s.currentID = id
			return cloneCV(s.cvs[i]), true
		}
	}
	s.currentID = ""
	return domain.CV{}, false
}

func (s *CVStore) Current() (domain.CV, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.cvs {
		if s.cvs[i].ID == s.currentID && s.currentID != "" {
			return cloneCV(s.cvs[i]), true
		}
	}
	return domain.CV{}, false
}

func (s *CVStore) UpdatePersonalInfo(info domain.PersonalInfo) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		cv.PersonalInfo = info
		return true
	})
}

func (s *CVStore) AddExperience(exp domain.Experience) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		cv.Experiences = append(cv.Experiences, exp)
		return true
	})
}

func (s *CVStore) UpdateExperience(exp domain.Experience) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		for i := range cv.Experiences {
			if cv.Experiences[i].ID == exp.ID {
				cv.Experiences[i] = exp
				return true
			}
		}
		return false
	})
}

func (s *CVStore) DeleteExperience(id string) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		for i := range cv.Experiences {
			if cv.Experiences[i].ID == id {
				cv.Experiences = append(cv.Experiences[:i:i], cv.Experiences[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *CVStore) AddEducation(edu domain.Education) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		cv.Education = append(cv.Education, edu)
		return true
	})
}

func (s *CVStore) UpdateEducation(edu domain.Education) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		for i := range cv.Education {
			if cv.Education[i].ID == edu.ID {
				cv.Education[i] = edu
				return true
			}
		}
		return false
	})
}

func (s *CVStore) DeleteEducation(id string) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		for i := range cv.Education {
			if cv.Education[i].ID == id {
				cv.Education = append(cv.Education[:i:i], cv.Education[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *CVStore) AddSkill(skill domain.Skill) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		cv.Skills = append(cv.Skills, skill)
		return true
	})
}

func (s *CVStore) UpdateSkill(skill domain.Skill) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		for i := range cv.Skills {
			if cv.Skills[i].ID == skill.ID {
				cv.Skills[i] = skill
				return true
			}
		}
		return false
	})
}

func (s *CVStore) DeleteSkill(id string) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		for i := range cv.Skills {
			if cv.Skills[i].ID == id {
				cv.Skills = append(cv.Skills[:i:i], cv.Skills[i+1:]...)
				return true
			}
		}
		return false
	})
}

func (s *CVStore) AddLanguage(lang domain.Language) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		cv.Languages = append(cv.Languages, lang)
		return true
	})
}

func (s *CVStore) UpdateLanguage(lang domain.Language) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		for i := range cv.Languages {
			if cv.Languages[i].ID == lang.ID {
				cv.Languages[i] = lang
				return true
			}
		}
		return false
	})
}

func (s *CVStore) DeleteLanguage(id string) (domain.CV, bool) {
	return s.mutateCurrent(func(cv *domain.CV) bool {
		for i := range cv.Languages {
			if cv.Languages[i].ID == id {
				cv.Languages = append(cv.Languages[:i:i], cv.Languages[i+1:]...)
				return true
			}
		}
		return false
	})
}

// mutateCurrent runs fn against the collection entry the current
// pointer refers to. When fn reports a change, updatedAt is refreshed.
// Without a current selection this is a no-op. The returned CV is the
// (possibly unchanged) current entity.
func (s *CVStore) mutateCurrent(fn func(cv *domain.CV) bool) (domain.CV, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentID == "" {
		return domain.CV{}, false
	}
	for i := range s.cvs {
		if s.cvs[i].ID == s.currentID {
			if fn(&s.cvs[i]) {
				s.cvs[i].UpdatedAt = s.now()
			}
			return cloneCV(s.cvs[i]), true
		}
	}
	return domain.CV{}, false
}

func cloneCV(cv domain.CV) domain.CV {
	out := cv
	out.Experiences = append([]domain.Experience(nil), cv.Experiences...)
	out.Education = append([]domain.Education(nil), cv.Education...)
	out.Skills = append([]domain.Skill(nil), cv.Skills...)
	out.Languages = append([]domain.Language(nil), cv.Languages...)
	return out
}

func cloneCVs(cvs []domain.CV) []domain.CV {
	out := make([]domain.CV, len(cvs))
	for i := range cvs {
		out[i] = cloneCV(cvs[i])
	}
	return out
}
