package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"trimz-backend/controllers"
	"trimz-backend/directory"
	"trimz-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDirectoryRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/hairdressers/:id", controllers.GetHairdresser)
	return r
}

// Directory handlers must serve the catalog that was most recently
// installed, so entities created after startup become visible once the
// snapshot is swapped.
func TestCatalogSwapIsVisibleToHandlers(t *testing.T) {
	router := newDirectoryRouter()

	empty, err := directory.NewCatalog(nil, nil, nil, nil)
	require.NoError(t, err)
	controllers.SetCatalog(empty)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/hairdressers/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	updated, err := directory.NewCatalog([]models.Hairdresser{
		{
			Person:       models.Person{ID: "1", Name: "Sarah Johnson", Rating: 4.9},
			BusinessName: "Sarah's Styles",
		},
	}, nil, nil, nil)
	require.NoError(t, err)
	controllers.SetCatalog(updated)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/hairdressers/1", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sarah Johnson")
}
