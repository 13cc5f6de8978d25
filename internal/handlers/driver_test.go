package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/limovia/fleetcrm/internal/db"
	"github.com/limovia/fleetcrm/internal/models"
	"github.com/limovia/fleetcrm/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newDriverTestHandler() (*DriverHandler, *MockDriverCollection) {
	mockDrivers := new(MockDriverCollection)
	notifier := quietNotifier(new(MockNotificationCollection), mockDrivers)
	return NewDriverHandler(mockDrivers, notifier), mockDrivers
}

func TestDriverHandler_Create(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		handler, mockDrivers := newDriverTestHandler()

		mockDrivers.On("FindDriverByEmail", mock.Anything, "jean@limovia.fr").Return(nil, db.ErrNotFound)
		mockDrivers.On("InsertDriver", mock.Anything, mock.MatchedBy(func(d models.Driver) bool {
			return d.Status == models.DriverAvailable && d.IsActive
		})).Return("d1", nil)

		req := withClaims(jsonRequest("POST", "/api/drivers", models.Driver{
			Name:  "Jean Moreau",
			Email: "jean@limovia.fr",
		}), ownerClaims())
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		mockDrivers.AssertExpectations(t)
	})

	t.Run("duplicate email answers 409", func(t *testing.T) {
		handler, mockDrivers := newDriverTestHandler()

		existing := &models.Driver{ID: primitive.NewObjectID(), Name: "Jean Moreau", Email: "jean@limovia.fr"}
		mockDrivers.On("FindDriverByEmail", mock.Anything, "jean@limovia.fr").Return(existing, nil)

		req := withClaims(jsonRequest("POST", "/api/drivers", models.Driver{
			Name:  "Autre Jean",
			Email: "jean@limovia.fr",
		}), ownerClaims())
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		mockDrivers.AssertNotCalled(t, "InsertDriver", mock.Anything, mock.Anything)
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		handler, mockDrivers := newDriverTestHandler()

		req := withClaims(jsonRequest("POST", "/api/drivers", models.Driver{
			Email: "jean@limovia.fr",
		}), ownerClaims())
		w := httptest.NewRecorder()

		handler.Create(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockDrivers.AssertNotCalled(t, "InsertDriver", mock.Anything, mock.Anything)
	})
}

func TestDriverHandler_List(t *testing.T) {
	handler, mockDrivers := newDriverTestHandler()

	drivers := []models.Driver{
		{ID: primitive.NewObjectID(), Name: "Jean Moreau", Email: "jean@limovia.fr"},
		{ID: primitive.NewObjectID(), Name: "Sophie Blanc", Email: "sophie@limovia.fr"},
	}
	mockDrivers.On("FindDrivers", mock.Anything, mock.Anything).Return(drivers, nil)

	req := withClaims(httptest.NewRequest("GET", "/api/drivers?search=sophie", nil), ownerClaims())
	w := httptest.NewRecorder()

	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var page schedule.Page[models.Driver]
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "Sophie Blanc", page.Items[0].Name)
}

func TestDriverHandler_Delete(t *testing.T) {
	t.Run("successful deletion", func(t *testing.T) {
		handler, mockDrivers := newDriverTestHandler()

		id := primitive.NewObjectID().Hex()
		mockDrivers.On("DeleteDriver", mock.Anything, id).Return(nil)

		req := withClaims(httptest.NewRequest("DELETE", "/api/drivers/"+id, nil), ownerClaims())
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		mockDrivers.AssertExpectations(t)
	})

	t.Run("unknown driver answers 404", func(t *testing.T) {
		handler, mockDrivers := newDriverTestHandler()

		id := primitive.NewObjectID().Hex()
		mockDrivers.On("DeleteDriver", mock.Anything, id).Return(db.ErrNotFound)

		req := withClaims(httptest.NewRequest("DELETE", "/api/drivers/"+id, nil), ownerClaims())
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		handler.Delete(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
