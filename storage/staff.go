package storage

import "bakery/models"

// AddStaff rejects a role that is already taken. Uniqueness is checked at
// add-time only; records loaded from disk are served as stored.
func (s *Store) AddStaff(st models.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].Role == st.Role {
			return ErrRoleTaken
		}
	}
	s.staff = append(s.staff, st)
	return s.persist()
}

// BootstrapStaff registers the very first staff member. The emptiness check
// and the append run under one write lock, so only one bootstrap can win.
func (s *Store) BootstrapStaff(st models.Staff) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.staff) > 0 {
		return ErrRegistrationClosed
	}
	s.staff = append(s.staff, st)
	return s.persist()
}

func (s *Store) Staff() []models.Staff {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Staff, len(s.staff))
	copy(out, s.staff)
	return out
}

// StaffByRole returns the first record with the given role.
func (s *Store) StaffByRole(role string) (models.Staff, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.staff {
		if st.Role == role {
			return st, nil
		}
	}
	return models.Staff{}, ErrStaffNotFound
}

func (s *Store) DeleteStaff(role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.staff {
		if s.staff[i].Role == role {
			s.staff = append(s.staff[:i], s.staff[i+1:]...)
			return s.persist()
		}
	}
	return ErrStaffNotFound
}

// StaffCount reports how many staff records exist.
func (s *Store) StaffCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.staff)
}
