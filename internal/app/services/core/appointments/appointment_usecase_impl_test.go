package appointments

import (
	"context"
	"errors"
	"fmt"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePatientRepo struct {
	patients map[string]*models.Patient
}

func (f *fakePatientRepo) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	id := fmt.Sprintf("patient-%d", len(f.patients)+1)
	patient.ID = id
	f.patients[id] = patient
	return id, nil
}

func (f *fakePatientRepo) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	for _, p := range f.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePatientRepo) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return f.patients[patientID], nil
}

func (f *fakePatientRepo) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	f.patients[patient.ID] = patient
	return nil
}

type fakeDoctorRepo struct {
	doctors map[string]*models.Doctor
}

func (f *fakeDoctorRepo) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	return f.doctors[doctorID], nil
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]models.Doctor, error) {
	var result []models.Doctor
	for _, d := range f.doctors {
		result = append(result, *d)
	}
	return result, nil
}

func (f *fakeDoctorRepo) UpdateDoctor(ctx context.Context, doctor *models.Doctor) error {
	f.doctors[doctor.ID] = doctor
	return nil
}

func (f *fakeDoctorRepo) SetAvailability(ctx context.Context, doctorID string, available bool) error {
	f.doctors[doctorID].Available = available
	return nil
}

func (f *fakeDoctorRepo) ReserveSlot(ctx context.Context, doctorID, slotDate, slotTime string) (contracts.SlotReservationResult, error) {
	doctor, found := f.doctors[doctorID]
	if !found {
		return contracts.SlotReservationDoctorMissing, nil
	}
	if !doctor.Available {
		return contracts.SlotReservationDoctorUnavailable, nil
	}
	if doctor.SlotsBooked == nil {
		doctor.SlotsBooked = models.SlotMap{}
	}
	if !doctor.SlotsBooked.Reserve(slotDate, slotTime) {
		return contracts.SlotReservationTaken, nil
	}
	return contracts.SlotReserved, nil
}

func (f *fakeDoctorRepo) ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	doctor, found := f.doctors[doctorID]
	if !found {
		return nil
	}
	doctor.SlotsBooked.Release(slotDate, slotTime)
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[string]*models.Appointment
	insertErr    error
}

func (f *fakeAppointmentRepo) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	if f.insertErr != nil {
		return "", f.insertErr
	}
	id := fmt.Sprintf("appointment-%d", len(f.appointments)+1)
	copied := *appointment
	copied.ID = id
	f.appointments[id] = &copied
	return id, nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return f.appointments[appointmentID], nil
}

func (f *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			result = append(result, *a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) FindByOrderID(ctx context.Context, orderID string) (*models.Appointment, error) {
	for _, a := range f.appointments {
		if a.OrderID == orderID {
			return a, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentRepo) SetCancelled(ctx context.Context, appointmentID string) error {
	f.appointments[appointmentID].Cancelled = true
	return nil
}

func (f *fakeAppointmentRepo) SetCompleted(ctx context.Context, appointmentID string) error {
	f.appointments[appointmentID].IsCompleted = true
	return nil
}

func (f *fakeAppointmentRepo) SetOrderID(ctx context.Context, appointmentID, orderID string) error {
	f.appointments[appointmentID].OrderID = orderID
	return nil
}

func (f *fakeAppointmentRepo) SetPaid(ctx context.Context, appointmentID string) error {
	f.appointments[appointmentID].Payment = true
	return nil
}

type fakeLocker struct {
	acquire    bool
	lockCalls  int
	unlockCall int
}

func (f *fakeLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	f.lockCalls++
	if !f.acquire {
		return false, "", nil
	}
	return true, "lock-value", nil
}

func (f *fakeLocker) Unlock(ctx context.Context, key, lockValue string) error {
	f.unlockCall++
	return nil
}

type fakeNotifier struct {
	events []*contracts.NotificationEvent
}

func (f *fakeNotifier) Publish(ctx context.Context, event *contracts.NotificationEvent) error {
	f.events = append(f.events, event)
	return nil
}

type bookingFixture struct {
	usecase         *appointmentUsecase
	patientRepo     *fakePatientRepo
	doctorRepo      *fakeDoctorRepo
	appointmentRepo *fakeAppointmentRepo
	locker          *fakeLocker
	notifier        *fakeNotifier
}

func newBookingFixture() *bookingFixture {
	patientRepo := &fakePatientRepo{patients: map[string]*models.Patient{
		"patient-1": {ID: "patient-1", Name: "Asha", Email: "asha@example.com"},
	}}
	doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
		"doctor-1": {ID: "doctor-1", Name: "Dr. Rao", Fees: 50, Available: true, SlotsBooked: models.SlotMap{}},
	}}
	appointmentRepo := &fakeAppointmentRepo{appointments: map[string]*models.Appointment{}}
	locker := &fakeLocker{acquire: true}
	notifier := &fakeNotifier{}

	return &bookingFixture{
		usecase: &appointmentUsecase{
			AppointmentRepository: appointmentRepo,
			PatientRepository:     patientRepo,
			DoctorRepository:      doctorRepo,
			LockerService:         locker,
			Notifier:              notifier,
			Log:                   zap.NewNop(),
		},
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		locker:          locker,
		notifier:        notifier,
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func patientSession() *models.Session {
	return &models.Session{SessionID: "session-1", UserID: "patient-1", Role: constvars.RolePatient}
}

func TestAppointmentUsecaseBook(t *testing.T) {
	bookRequest := &requests.BookAppointment{DocID: "doctor-1", SlotDate: "10_5_2024", SlotTime: "10:00 am"}

	t.Run("books a free slot and snapshots both parties", func(t *testing.T) {
		f := newBookingFixture()

		response, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)

		require.NoError(t, err)
		assert.Equal(t, "doctor-1", response.DocID)
		assert.Equal(t, "patient-1", response.UserID)
		assert.Equal(t, float64(50), response.Amount)
		assert.Equal(t, "Dr. Rao", response.DocData.Name)
		assert.Equal(t, "Asha", response.UserData.Name)
		assert.False(t, response.Cancelled)
		assert.False(t, response.Payment)

		assert.True(t, f.doctorRepo.doctors["doctor-1"].SlotsBooked.Has("10_5_2024", "10:00 am"))
		assert.Equal(t, f.locker.lockCalls, f.locker.unlockCall)

		require.Len(t, f.notifier.events, 1)
		assert.Equal(t, constvars.NotificationEventAppointmentBooked, f.notifier.events[0].Event)
	})

	t.Run("second booking of the same slot conflicts", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)

		_, err = f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		assert.Len(t, f.appointmentRepo.appointments, 1)
	})

	t.Run("unavailable doctor refuses booking", func(t *testing.T) {
		f := newBookingFixture()
		f.doctorRepo.doctors["doctor-1"].Available = false

		_, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)

		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
	})

	t.Run("unknown doctor is not found", func(t *testing.T) {
		f := newBookingFixture()

		_, err := f.usecase.Book(context.Background(), patientSession(), &requests.BookAppointment{
			DocID: "doctor-404", SlotDate: "10_5_2024", SlotTime: "10:00 am",
		})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})

	t.Run("contended lock refuses booking without touching the slot", func(t *testing.T) {
		f := newBookingFixture()
		f.locker.acquire = false

		_, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)

		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		assert.False(t, f.doctorRepo.doctors["doctor-1"].SlotsBooked.Has("10_5_2024", "10:00 am"))
	})

	t.Run("failed ledger insert releases the reserved slot", func(t *testing.T) {
		f := newBookingFixture()
		f.appointmentRepo.insertErr = exceptions.ErrMongoDBInsertDocument(errors.New("write failed"))

		_, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)

		require.Error(t, err)
		assert.False(t, f.doctorRepo.doctors["doctor-1"].SlotsBooked.Has("10_5_2024", "10:00 am"))
		assert.Empty(t, f.appointmentRepo.appointments)
	})
}

func TestAppointmentUsecaseCancel(t *testing.T) {
	bookRequest := &requests.BookAppointment{DocID: "doctor-1", SlotDate: "10_5_2024", SlotTime: "10:00 am"}

	t.Run("patient cancel frees the slot", func(t *testing.T) {
		f := newBookingFixture()
		booked, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)

		err = f.usecase.CancelByPatient(context.Background(), patientSession(), &requests.CancelAppointment{AppointmentID: booked.ID})

		require.NoError(t, err)
		assert.True(t, f.appointmentRepo.appointments[booked.ID].Cancelled)
		assert.False(t, f.doctorRepo.doctors["doctor-1"].SlotsBooked.Has("10_5_2024", "10:00 am"))

		require.Len(t, f.notifier.events, 2)
		assert.Equal(t, constvars.NotificationEventAppointmentCancelled, f.notifier.events[1].Event)
	})

	t.Run("double cancel conflicts and releases nothing twice", func(t *testing.T) {
		f := newBookingFixture()
		booked, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)

		cancelRequest := &requests.CancelAppointment{AppointmentID: booked.ID}
		require.NoError(t, f.usecase.CancelByPatient(context.Background(), patientSession(), cancelRequest))

		// A second patient books the freed slot; the stale cancel must not free it again.
		rebooked, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)

		err = f.usecase.CancelByPatient(context.Background(), patientSession(), cancelRequest)
		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
		assert.True(t, f.doctorRepo.doctors["doctor-1"].SlotsBooked.Has("10_5_2024", "10:00 am"))
		assert.False(t, f.appointmentRepo.appointments[rebooked.ID].Cancelled)
	})

	t.Run("stranger cannot cancel another patient's appointment", func(t *testing.T) {
		f := newBookingFixture()
		booked, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)

		stranger := &models.Session{SessionID: "session-2", UserID: "patient-2", Role: constvars.RolePatient}
		err = f.usecase.CancelByPatient(context.Background(), stranger, &requests.CancelAppointment{AppointmentID: booked.ID})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
		assert.False(t, f.appointmentRepo.appointments[booked.ID].Cancelled)
	})

	t.Run("doctor cancel checks doctor ownership", func(t *testing.T) {
		f := newBookingFixture()
		booked, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)

		otherDoctor := &models.Session{SessionID: "session-3", UserID: "doctor-2", Role: constvars.RoleDoctor}
		err = f.usecase.CancelByDoctor(context.Background(), otherDoctor, &requests.CancelAppointment{AppointmentID: booked.ID})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))

		owner := &models.Session{SessionID: "session-4", UserID: "doctor-1", Role: constvars.RoleDoctor}
		err = f.usecase.CancelByDoctor(context.Background(), owner, &requests.CancelAppointment{AppointmentID: booked.ID})
		require.NoError(t, err)
		assert.True(t, f.appointmentRepo.appointments[booked.ID].Cancelled)
	})

	t.Run("missing appointment is not found", func(t *testing.T) {
		f := newBookingFixture()

		err := f.usecase.CancelByPatient(context.Background(), patientSession(), &requests.CancelAppointment{AppointmentID: "appointment-404"})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})
}

func TestAppointmentUsecaseMarkComplete(t *testing.T) {
	bookRequest := &requests.BookAppointment{DocID: "doctor-1", SlotDate: "10_5_2024", SlotTime: "10:00 am"}
	doctorSession := &models.Session{SessionID: "session-5", UserID: "doctor-1", Role: constvars.RoleDoctor}

	t.Run("owning doctor completes the appointment", func(t *testing.T) {
		f := newBookingFixture()
		booked, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)

		err = f.usecase.MarkComplete(context.Background(), doctorSession, &requests.CompleteAppointment{AppointmentID: booked.ID})

		require.NoError(t, err)
		assert.True(t, f.appointmentRepo.appointments[booked.ID].IsCompleted)
	})

	t.Run("cancelled appointment cannot be completed", func(t *testing.T) {
		f := newBookingFixture()
		booked, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)
		require.NoError(t, f.usecase.CancelByPatient(context.Background(), patientSession(), &requests.CancelAppointment{AppointmentID: booked.ID}))

		err = f.usecase.MarkComplete(context.Background(), doctorSession, &requests.CompleteAppointment{AppointmentID: booked.ID})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusConflict, statusOf(t, err))
	})

	t.Run("other doctor cannot complete it", func(t *testing.T) {
		f := newBookingFixture()
		booked, err := f.usecase.Book(context.Background(), patientSession(), bookRequest)
		require.NoError(t, err)

		other := &models.Session{SessionID: "session-6", UserID: "doctor-2", Role: constvars.RoleDoctor}
		err = f.usecase.MarkComplete(context.Background(), other, &requests.CompleteAppointment{AppointmentID: booked.ID})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusForbidden, statusOf(t, err))
	})
}

func TestAppointmentUsecaseList(t *testing.T) {
	f := newBookingFixture()
	_, err := f.usecase.Book(context.Background(), patientSession(), &requests.BookAppointment{
		DocID: "doctor-1", SlotDate: "10_5_2024", SlotTime: "10:00 am",
	})
	require.NoError(t, err)
	_, err = f.usecase.Book(context.Background(), patientSession(), &requests.BookAppointment{
		DocID: "doctor-1", SlotDate: "10_5_2024", SlotTime: "11:00 am",
	})
	require.NoError(t, err)

	forPatient, err := f.usecase.ListForPatient(context.Background(), patientSession())
	require.NoError(t, err)
	assert.Len(t, forPatient, 2)

	doctorSession := &models.Session{SessionID: "session-7", UserID: "doctor-1", Role: constvars.RoleDoctor}
	forDoctor, err := f.usecase.ListForDoctor(context.Background(), doctorSession)
	require.NoError(t, err)
	assert.Len(t, forDoctor, 2)

	nobody := &models.Session{SessionID: "session-8", UserID: "patient-9", Role: constvars.RolePatient}
	empty, err := f.usecase.ListForPatient(context.Background(), nobody)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
