package handlers

import (
	"context"

	"github.com/limovia/fleetcrm/internal/events"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// MockUserCollection is a mock implementation of db.UserCollection
type MockUserCollection struct {
	mock.Mock
}

func (m *MockUserCollection) InsertUser(ctx context.Context, user models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserCollection) FindUserByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserCollection) FindUsers(ctx context.Context, filter bson.M) ([]models.User, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserCollection) UpdateUser(ctx context.Context, id string, user models.User) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockUserCollection) UpdateLanguage(ctx context.Context, id string, lang string) error {
	args := m.Called(ctx, id, lang)
	return args.Error(0)
}

func (m *MockUserCollection) UpdateLastLogin(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserCollection) DeleteUser(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserCollection) DeleteAllUsers(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockTripCollection is a mock implementation of db.TripCollection
type MockTripCollection struct {
	mock.Mock
}

func (m *MockTripCollection) InsertTrip(ctx context.Context, trip models.Trip) (string, error) {
	args := m.Called(ctx, trip)
	return args.String(0), args.Error(1)
}

func (m *MockTripCollection) FindTrips(ctx context.Context, filter bson.M) ([]models.Trip, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripCollection) FindTripByID(ctx context.Context, id string) (*models.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *MockTripCollection) FindTripsByDriver(ctx context.Context, driverID string) ([]models.Trip, error) {
	args := m.Called(ctx, driverID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripCollection) FindTripsByDate(ctx context.Context, date string) ([]models.Trip, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Trip), args.Error(1)
}

func (m *MockTripCollection) UpdateTrip(ctx context.Context, id string, trip models.Trip) error {
	args := m.Called(ctx, id, trip)
	return args.Error(0)
}

func (m *MockTripCollection) DeleteTrip(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTripCollection) DeleteAllTrips(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockDriverCollection is a mock implementation of db.DriverCollection
type MockDriverCollection struct {
	mock.Mock
}

func (m *MockDriverCollection) InsertDriver(ctx context.Context, driver models.Driver) (string, error) {
	args := m.Called(ctx, driver)
	return args.String(0), args.Error(1)
}

func (m *MockDriverCollection) FindDrivers(ctx context.Context, filter bson.M) ([]models.Driver, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Driver), args.Error(1)
}

func (m *MockDriverCollection) FindDriverByID(ctx context.Context, id string) (*models.Driver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverCollection) FindDriverByEmail(ctx context.Context, email string) (*models.Driver, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverCollection) FindDriverByUserID(ctx context.Context, userID string) (*models.Driver, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Driver), args.Error(1)
}

func (m *MockDriverCollection) UpdateDriver(ctx context.Context, id string, driver models.Driver) error {
	args := m.Called(ctx, id, driver)
	return args.Error(0)
}

func (m *MockDriverCollection) DeleteDriver(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDriverCollection) DeleteAllDrivers(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockVehicleCollection is a mock implementation of db.VehicleCollection
type MockVehicleCollection struct {
	mock.Mock
}

func (m *MockVehicleCollection) InsertVehicle(ctx context.Context, vehicle models.Vehicle) (string, error) {
	args := m.Called(ctx, vehicle)
	return args.String(0), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Vehicle), args.Error(1)
}

func (m *MockVehicleCollection) UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error {
	args := m.Called(ctx, id, vehicle)
	return args.Error(0)
}

func (m *MockVehicleCollection) ApplyTelemetry(ctx context.Context, tele models.VehicleTelemetry) error {
	args := m.Called(ctx, tele)
	return args.Error(0)
}

func (m *MockVehicleCollection) DeleteVehicle(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVehicleCollection) DeleteAllVehicles(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockNotificationCollection is a mock implementation of db.NotificationCollection
type MockNotificationCollection struct {
	mock.Mock
}

func (m *MockNotificationCollection) InsertNotification(ctx context.Context, n models.Notification) (string, error) {
	args := m.Called(ctx, n)
	return args.String(0), args.Error(1)
}

func (m *MockNotificationCollection) FindNotifications(ctx context.Context, recipient string, unreadOnly bool) ([]models.Notification, error) {
	args := m.Called(ctx, recipient, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Notification), args.Error(1)
}

func (m *MockNotificationCollection) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNotificationCollection) DeleteAllNotifications(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockDocumentCollection is a mock implementation of db.DocumentCollection
type MockDocumentCollection struct {
	mock.Mock
}

func (m *MockDocumentCollection) InsertDocument(ctx context.Context, doc models.Document) (string, error) {
	args := m.Called(ctx, doc)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentCollection) FindDocuments(ctx context.Context, kind models.DocumentKind) ([]models.Document, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *MockDocumentCollection) FindDocumentByID(ctx context.Context, id string) (*models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *MockDocumentCollection) CountByKind(ctx context.Context, kind models.DocumentKind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDocumentCollection) UpdateDocument(ctx context.Context, id string, doc models.Document) error {
	args := m.Called(ctx, id, doc)
	return args.Error(0)
}

func (m *MockDocumentCollection) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDocumentCollection) DeleteAllDocuments(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockCompanyCollection is a mock implementation of db.CompanyCollection
type MockCompanyCollection struct {
	mock.Mock
}

func (m *MockCompanyCollection) InsertCompany(ctx context.Context, company models.Company) (string, error) {
	args := m.Called(ctx, company)
	return args.String(0), args.Error(1)
}

func (m *MockCompanyCollection) FindCompanies(ctx context.Context) ([]models.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Company), args.Error(1)
}

func (m *MockCompanyCollection) FindCompanyByID(ctx context.Context, id string) (*models.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Company), args.Error(1)
}

func (m *MockCompanyCollection) UpdateCompany(ctx context.Context, id string, company models.Company) error {
	args := m.Called(ctx, id, company)
	return args.Error(0)
}

func (m *MockCompanyCollection) DeleteCompany(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyCollection) DeleteAllCompanies(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// quietNotifier builds a notifier with no producer, wired to the given
// mocks. Trips without a driver reference never touch either collection.
func quietNotifier(notifications *MockNotificationCollection, drivers *MockDriverCollection) *events.Notifier {
	return events.NewNotifier(nil, notifications, drivers)
}
