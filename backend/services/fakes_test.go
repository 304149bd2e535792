package services_test

import (
	"strings"

	"steptember/backend/models"

	"gorm.io/gorm"
)

// fakeStepRepo is an in-memory StepRepository. ISO date strings compare
// lexicographically, which is all the range queries need.
type fakeStepRepo struct {
	records map[uint]map[string]int
}

func newFakeStepRepo() *fakeStepRepo {
	return &fakeStepRepo{records: make(map[uint]map[string]int)}
}

func (f *fakeStepRepo) set(userID uint, day string, steps int) {
	if f.records[userID] == nil {
		f.records[userID] = make(map[string]int)
	}
	f.records[userID][day] = steps
}

func (f *fakeStepRepo) SumDay(userID uint, day string) (int, error) {
	return f.records[userID][day], nil
}

func (f *fakeStepRepo) SumRange(userID uint, from, to string) (int, error) {
	sum := 0
	for day, steps := range f.records[userID] {
		if day >= from && day <= to {
			sum += steps
		}
	}
	return sum, nil
}

func (f *fakeStepRepo) SumMonth(userID uint, prefix string) (int, error) {
	sum := 0
	for day, steps := range f.records[userID] {
		if strings.HasPrefix(day, prefix) {
			sum += steps
		}
	}
	return sum, nil
}

func (f *fakeStepRepo) Upsert(userID uint, day string, steps int) error {
	f.set(userID, day, steps)
	return nil
}

func gormModel(id uint) gorm.Model {
	return gorm.Model{ID: id}
}

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) Create(user *models.User) error {
	user.ID = uint(len(f.users) + 1)
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			return &f.users[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) All() ([]models.User, error) {
	return f.users, nil
}
