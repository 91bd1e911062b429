package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"dental_clinic_api/internal/model"
	"dental_clinic_api/internal/repository"
	"dental_clinic_api/internal/repository/mocks"
	"dental_clinic_api/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAppointmentTest(t *testing.T) (service.AppointmentService, *mocks.AppointmentRepository) {
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mockRepo := new(mocks.AppointmentRepository)
	return service.NewAppointmentService(db, mockRepo), mockRepo
}

func TestAppointmentService_CreateSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		req := &model.CreateSlotRequest{
			StartsAt: time.Now().Add(24 * time.Hour),
			EndsAt:   time.Now().Add(25 * time.Hour),
		}
		mockRepo.On("CreateSlot", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AvailabilitySlot")).Run(func(args mock.Arguments) {
			slot := args.Get(2).(*model.AvailabilitySlot)
			assert.Equal(t, uint(5), slot.DentistID)
			assert.True(t, slot.Open)
			assert.NotEqual(t, uuid.Nil, slot.SlotID)
		}).Return(nil).Once()

		slot, err := svc.CreateSlot(ctx, 5, req)

		require.NoError(t, err)
		require.NotNil(t, slot)
		assert.True(t, slot.Open)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - ends before it starts", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		req := &model.CreateSlotRequest{
			StartsAt: time.Now().Add(25 * time.Hour),
			EndsAt:   time.Now().Add(24 * time.Hour),
		}

		slot, err := svc.CreateSlot(ctx, 5, req)

		assert.Nil(t, slot)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "CreateSlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - slot in the past", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		req := &model.CreateSlotRequest{
			StartsAt: time.Now().Add(-2 * time.Hour),
			EndsAt:   time.Now().Add(-time.Hour),
		}

		slot, err := svc.CreateSlot(ctx, 5, req)

		assert.Nil(t, slot)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
		mockRepo.AssertNotCalled(t, "CreateSlot", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAppointmentService_Book(t *testing.T) {
	ctx := context.Background()
	slotID := uuid.New()

	openSlot := func() *model.AvailabilitySlot {
		return &model.AvailabilitySlot{
			SlotID:    slotID,
			DentistID: 5,
			StartsAt:  time.Now().Add(24 * time.Hour),
			EndsAt:    time.Now().Add(25 * time.Hour),
			Open:      true,
		}
	}

	t.Run("Success - slot closed and appointment created together", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		mockRepo.On("FindSlotByID", mock.Anything, mock.Anything, slotID).Return(openSlot(), nil).Once()
		mockRepo.On("UpdateSlot", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AvailabilitySlot")).Run(func(args mock.Arguments) {
			slot := args.Get(2).(*model.AvailabilitySlot)
			assert.False(t, slot.Open)
		}).Return(nil).Once()
		mockRepo.On("CreateAppointment", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Appointment")).Run(func(args mock.Arguments) {
			appt := args.Get(2).(*model.Appointment)
			assert.Equal(t, uint(3), appt.PatientID)
			assert.Equal(t, uint(5), appt.DentistID)
			assert.Equal(t, model.AppointmentBooked, appt.Status)
		}).Return(nil).Once()

		appt, err := svc.Book(ctx, 3, &model.BookAppointmentRequest{SlotID: slotID, Notes: "first visit"})

		require.NoError(t, err)
		require.NotNil(t, appt)
		assert.Equal(t, slotID, appt.SlotID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - slot already taken", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		slot := openSlot()
		slot.Open = false
		mockRepo.On("FindSlotByID", mock.Anything, mock.Anything, slotID).Return(slot, nil).Once()

		appt, err := svc.Book(ctx, 3, &model.BookAppointmentRequest{SlotID: slotID})

		assert.Nil(t, appt)
		var appErr *model.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "SLOT_TAKEN", appErr.Detail.Code)
		assert.ErrorIs(t, err, model.ErrConflict)
		mockRepo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - slot not found", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		mockRepo.On("FindSlotByID", mock.Anything, mock.Anything, slotID).Return(nil, model.ErrNotFound).Once()

		appt, err := svc.Book(ctx, 3, &model.BookAppointmentRequest{SlotID: slotID})

		assert.Nil(t, appt)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("Failure - slot in the past", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		slot := openSlot()
		slot.StartsAt = time.Now().Add(-time.Hour)
		mockRepo.On("FindSlotByID", mock.Anything, mock.Anything, slotID).Return(slot, nil).Once()

		appt, err := svc.Book(ctx, 3, &model.BookAppointmentRequest{SlotID: slotID})

		assert.Nil(t, appt)
		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})
}

func TestAppointmentService_Cancel(t *testing.T) {
	ctx := context.Background()
	apptID := uuid.New()
	slotID := uuid.New()

	bookedAppt := func() *model.Appointment {
		return &model.Appointment{
			AppointmentID: apptID,
			SlotID:        slotID,
			PatientID:     3,
			DentistID:     5,
			Status:        model.AppointmentBooked,
		}
	}

	t.Run("Success - appointment cancelled and slot reopened", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		mockRepo.On("FindAppointmentByID", mock.Anything, mock.Anything, apptID).Return(bookedAppt(), nil).Once()
		mockRepo.On("UpdateAppointment", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Appointment")).Run(func(args mock.Arguments) {
			appt := args.Get(2).(*model.Appointment)
			assert.Equal(t, model.AppointmentCancelled, appt.Status)
		}).Return(nil).Once()
		mockRepo.On("FindSlotByID", mock.Anything, mock.Anything, slotID).Return(&model.AvailabilitySlot{SlotID: slotID, Open: false}, nil).Once()
		mockRepo.On("UpdateSlot", mock.Anything, mock.Anything, mock.AnythingOfType("*model.AvailabilitySlot")).Run(func(args mock.Arguments) {
			slot := args.Get(2).(*model.AvailabilitySlot)
			assert.True(t, slot.Open)
		}).Return(nil).Once()

		err := svc.Cancel(ctx, 3, apptID)

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - another patient's appointment", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		mockRepo.On("FindAppointmentByID", mock.Anything, mock.Anything, apptID).Return(bookedAppt(), nil).Once()

		err := svc.Cancel(ctx, 99, apptID)

		assert.ErrorIs(t, err, model.ErrForbidden)
		mockRepo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failure - already cancelled", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		appt := bookedAppt()
		appt.Status = model.AppointmentCancelled
		mockRepo.On("FindAppointmentByID", mock.Anything, mock.Anything, apptID).Return(appt, nil).Once()

		err := svc.Cancel(ctx, 3, apptID)

		assert.ErrorIs(t, err, model.ErrInvalidInput)
	})

	t.Run("Failure - appointment not found", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		mockRepo.On("FindAppointmentByID", mock.Anything, mock.Anything, apptID).Return(nil, model.ErrNotFound).Once()

		err := svc.Cancel(ctx, 3, apptID)

		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("Failure - slot lookup error rolls the cancellation back", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		dbErr := errors.New("driver: bad connection")
		mockRepo.On("FindAppointmentByID", mock.Anything, mock.Anything, apptID).Return(bookedAppt(), nil).Once()
		mockRepo.On("UpdateAppointment", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil).Once()
		mockRepo.On("FindSlotByID", mock.Anything, mock.Anything, slotID).Return(nil, dbErr).Once()

		err := svc.Cancel(ctx, 3, apptID)

		require.Error(t, err)
		assert.ErrorIs(t, err, dbErr)
		mockRepo.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success - slot already gone", func(t *testing.T) {
		svc, mockRepo := setupAppointmentTest(t)
		mockRepo.On("FindAppointmentByID", mock.Anything, mock.Anything, apptID).Return(bookedAppt(), nil).Once()
		mockRepo.On("UpdateAppointment", mock.Anything, mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil).Once()
		mockRepo.On("FindSlotByID", mock.Anything, mock.Anything, slotID).Return(nil, model.ErrNotFound).Once()

		err := svc.Cancel(ctx, 3, apptID)

		require.NoError(t, err)
		mockRepo.AssertNotCalled(t, "UpdateSlot", mock.Anything, mock.Anything, mock.Anything)
	})
}

// Runs Book and Cancel against the real repository so the schema is part of
// the test: a slot reopened by a cancellation must accept a second booking.
func TestAppointmentService_RebookAfterCancel(t *testing.T) {
	ctx := context.Background()

	db, err := gorm.Open(sqlite.Open("file:rebooktest?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.AvailabilitySlot{}, &model.Appointment{}))

	svc := service.NewAppointmentService(db, repository.NewGormAppointmentRepository())

	slot, err := svc.CreateSlot(ctx, 5, &model.CreateSlotRequest{
		StartsAt: time.Now().Add(24 * time.Hour),
		EndsAt:   time.Now().Add(25 * time.Hour),
	})
	require.NoError(t, err)

	first, err := svc.Book(ctx, 3, &model.BookAppointmentRequest{SlotID: slot.SlotID})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(ctx, 3, first.AppointmentID))

	second, err := svc.Book(ctx, 4, &model.BookAppointmentRequest{SlotID: slot.SlotID})
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, uint(4), second.PatientID)
	assert.Equal(t, slot.SlotID, second.SlotID)

	// The cancelled row survives alongside the new booking.
	var count int64
	require.NoError(t, db.Model(&model.Appointment{}).Where("slot_id = ?", slot.SlotID).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	reloaded, err := svc.ListForPatient(ctx, 3)
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, model.AppointmentCancelled, reloaded[0].Status)
}
