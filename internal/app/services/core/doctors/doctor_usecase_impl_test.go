package doctors

import (
	"context"
	"fmt"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

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
	return contracts.SlotReserved, nil
}

func (f *fakeDoctorRepo) ReleaseSlot(ctx context.Context, doctorID, slotDate, slotTime string) error {
	return nil
}

type fakeAppointmentRepo struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentRepo) CreateAppointment(ctx context.Context, appointment *models.Appointment) (string, error) {
	return "", nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Appointment, error) {
	var result []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID == doctorID {
			result = append(result, a)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) FindByOrderID(ctx context.Context, orderID string) (*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentRepo) SetCancelled(ctx context.Context, appointmentID string) error {
	return nil
}

func (f *fakeAppointmentRepo) SetCompleted(ctx context.Context, appointmentID string) error {
	return nil
}

func (f *fakeAppointmentRepo) SetOrderID(ctx context.Context, appointmentID, orderID string) error {
	return nil
}

func (f *fakeAppointmentRepo) SetPaid(ctx context.Context, appointmentID string) error {
	return nil
}

type fakeRedisRepo struct {
	values map[string]interface{}
}

func (f *fakeRedisRepo) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.values[key] = value
	return nil
}

func (f *fakeRedisRepo) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepo) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepo) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	return true, nil
}

type doctorFixture struct {
	usecase         *doctorUsecase
	doctorRepo      *fakeDoctorRepo
	appointmentRepo *fakeAppointmentRepo
	redisRepo       *fakeRedisRepo
}

func newDoctorFixture() *doctorFixture {
	hashed, _ := utils.HashPassword("doctor-secret")
	doctorRepo := &fakeDoctorRepo{doctors: map[string]*models.Doctor{
		"doctor-1": {
			ID:        "doctor-1",
			Name:      "Dr. Rao",
			Email:     "rao@example.com",
			Password:  hashed,
			Fees:      50,
			Available: true,
		},
	}}
	appointmentRepo := &fakeAppointmentRepo{}
	redisRepo := &fakeRedisRepo{values: map[string]interface{}{}}

	internalConfig := &config.InternalConfig{}
	internalConfig.JWT.Secret = "test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	return &doctorFixture{
		usecase: &doctorUsecase{
			DoctorRepository:      doctorRepo,
			AppointmentRepository: appointmentRepo,
			RedisRepository:       redisRepo,
			InternalConfig:        internalConfig,
			Log:                   zap.NewNop(),
		},
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		redisRepo:       redisRepo,
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func doctorSession() *models.Session {
	return &models.Session{SessionID: "session-1", UserID: "doctor-1", Role: constvars.RoleDoctor}
}

func TestDoctorUsecaseLogin(t *testing.T) {
	t.Run("valid credentials return a token and store a session", func(t *testing.T) {
		f := newDoctorFixture()

		token, err := f.usecase.Login(context.Background(), &requests.Login{
			Email:    "rao@example.com",
			Password: "doctor-secret",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, token.Token)
		assert.Len(t, f.redisRepo.values, 1)
		for key, value := range f.redisRepo.values {
			assert.Contains(t, key, "session:")
			session, ok := value.(*models.Session)
			require.True(t, ok)
			assert.Equal(t, "doctor-1", session.UserID)
			assert.Equal(t, constvars.RoleDoctor, session.Role)
		}
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		f := newDoctorFixture()

		_, err := f.usecase.Login(context.Background(), &requests.Login{
			Email:    "rao@example.com",
			Password: "wrong",
		})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})

	t.Run("unknown email is unauthorized", func(t *testing.T) {
		f := newDoctorFixture()

		_, err := f.usecase.Login(context.Background(), &requests.Login{
			Email:    "nobody@example.com",
			Password: "doctor-secret",
		})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusUnauthorized, statusOf(t, err))
	})
}

func TestDoctorUsecaseChangeAvailability(t *testing.T) {
	t.Run("toggles the flag each call", func(t *testing.T) {
		f := newDoctorFixture()

		require.NoError(t, f.usecase.ChangeAvailability(context.Background(), doctorSession()))
		assert.False(t, f.doctorRepo.doctors["doctor-1"].Available)

		require.NoError(t, f.usecase.ChangeAvailability(context.Background(), doctorSession()))
		assert.True(t, f.doctorRepo.doctors["doctor-1"].Available)
	})

	t.Run("unknown doctor is not found", func(t *testing.T) {
		f := newDoctorFixture()

		err := f.usecase.ChangeAvailability(context.Background(), &models.Session{
			SessionID: "session-2", UserID: "doctor-404", Role: constvars.RoleDoctor,
		})

		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, statusOf(t, err))
	})
}

func TestDoctorUsecaseUpdateProfile(t *testing.T) {
	f := newDoctorFixture()

	err := f.usecase.UpdateProfile(context.Background(), doctorSession(), &requests.UpdateDoctorProfile{
		Fees:      75,
		Address:   models.Address{Line1: "12 Clinic Road"},
		Available: false,
		About:     "Cardiology, 10 years",
	})

	require.NoError(t, err)
	updated := f.doctorRepo.doctors["doctor-1"]
	assert.Equal(t, float64(75), updated.Fees)
	assert.Equal(t, "12 Clinic Road", updated.Address.Line1)
	assert.False(t, updated.Available)
	assert.Equal(t, "Cardiology, 10 years", updated.About)
}

func TestDoctorUsecaseGetDashboard(t *testing.T) {
	t.Run("earnings count paid or completed only, patients once", func(t *testing.T) {
		f := newDoctorFixture()
		f.appointmentRepo.appointments = []models.Appointment{
			{ID: "a1", DoctorID: "doctor-1", PatientID: "patient-1", Amount: 50, IsCompleted: true},
			{ID: "a2", DoctorID: "doctor-1", PatientID: "patient-1", Amount: 50, Payment: true},
			{ID: "a3", DoctorID: "doctor-1", PatientID: "patient-2", Amount: 50},
			{ID: "a4", DoctorID: "doctor-1", PatientID: "patient-3", Amount: 50, Cancelled: true},
		}

		dashboard, err := f.usecase.GetDashboard(context.Background(), doctorSession())

		require.NoError(t, err)
		assert.Equal(t, float64(100), dashboard.Earnings)
		assert.Equal(t, 4, dashboard.Appointments)
		assert.Equal(t, 3, dashboard.Patients)
		assert.Len(t, dashboard.LatestAppointments, 4)
	})

	t.Run("latest list is capped", func(t *testing.T) {
		f := newDoctorFixture()
		for i := 0; i < 8; i++ {
			f.appointmentRepo.appointments = append(f.appointmentRepo.appointments, models.Appointment{
				ID:        fmt.Sprintf("a%d", i),
				DoctorID:  "doctor-1",
				PatientID: fmt.Sprintf("patient-%d", i),
				Amount:    50,
			})
		}

		dashboard, err := f.usecase.GetDashboard(context.Background(), doctorSession())

		require.NoError(t, err)
		assert.Equal(t, 8, dashboard.Appointments)
		assert.Len(t, dashboard.LatestAppointments, dashboardLatestAppointments)
	})

	t.Run("empty ledger yields zeroes", func(t *testing.T) {
		f := newDoctorFixture()

		dashboard, err := f.usecase.GetDashboard(context.Background(), doctorSession())

		require.NoError(t, err)
		assert.Zero(t, dashboard.Earnings)
		assert.Zero(t, dashboard.Appointments)
		assert.Zero(t, dashboard.Patients)
		assert.Empty(t, dashboard.LatestAppointments)
	})
}
