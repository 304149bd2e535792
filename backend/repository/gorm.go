package repository

import (
	"steptember/backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormStepRepository struct {
	DB *gorm.DB
}

func NewStepRepository(db *gorm.DB) *GormStepRepository {
	return &GormStepRepository{DB: db}
}

func (r *GormStepRepository) SumDay(userID uint, day string) (int, error) {
	var sum int64
	err := r.DB.Model(&models.StepRecord{}).
		Where("user_id = ? AND date = ?", userID, day).
		Select("COALESCE(SUM(steps), 0)").
		Scan(&sum).Error
	return int(sum), err
}

func (r *GormStepRepository) SumRange(userID uint, from, to string) (int, error) {
	var sum int64
	err := r.DB.Model(&models.StepRecord{}).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Select("COALESCE(SUM(steps), 0)").
		Scan(&sum).Error
	return int(sum), err
}

func (r *GormStepRepository) SumMonth(userID uint, prefix string) (int, error) {
	var sum int64
	err := r.DB.Model(&models.StepRecord{}).
		Where("user_id = ? AND date LIKE ?", userID, prefix+"%").
		Select("COALESCE(SUM(steps), 0)").
		Scan(&sum).Error
	return int(sum), err
}

// Upsert writes the day's count as a single INSERT ... ON CONFLICT DO UPDATE
// guarded by the (user_id, date) unique index, so concurrent submissions for
// the same day cannot create duplicates.
func (r *GormStepRepository) Upsert(userID uint, day string, steps int) error {
	record := models.StepRecord{UserID: userID, Date: day, Steps: steps}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"steps", "updated_at"}),
	}).Create(&record).Error
}

type GormUserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{DB: db}
}

func (r *GormUserRepository) Create(user *models.User) error {
	return r.DB.Create(user).Error
}

func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormUserRepository) All() ([]models.User, error) {
	var users []models.User
	if err := r.DB.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
