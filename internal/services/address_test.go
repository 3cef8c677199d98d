package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"frota-backend/internal/models"
	"frota-backend/internal/repository"
	"frota-backend/pkg/apperrors"
	"frota-backend/pkg/geocode"
)

func setupAddressesService(t *testing.T, geocoder *geocode.Client) (*AddressesService, *gorm.DB) {
	db := setupTestDB(t)
	service := NewAddressesService(
		repository.NewAddressRepository(db),
		NewAuditRecorder(repository.NewAuditLogRepository(db)),
		geocoder,
	)
	return service, db
}

func TestAddressesService_Create(t *testing.T) {
	service, db := setupAddressesService(t, nil)
	actor := testActor(models.RoleEmployee)

	address, err := service.Create(context.Background(), &CreateAddressRequest{
		PlaceID:          "place-123",
		FormattedAddress: "Av. Santos Dumont, 1000 - Aldeota, Fortaleza - CE",
		City:             "Fortaleza",
		State:            "CE",
		Country:          "Brasil",
		Latitude:         -3.7327,
		Longitude:        -38.5270,
	}, actor)
	require.NoError(t, err)
	assert.NotEqual(t, "", address.ID.String())

	entries := auditEntries(t, db, "Address", address.ID)
	require.Len(t, entries, 1)
	assert.Equal(t, models.AuditCreate, entries[0].Action)
}

func TestAddressesService_Create_DuplicatePlaceID(t *testing.T) {
	service, db := setupAddressesService(t, nil)
	seedAddress(t, db, "place-123")

	_, err := service.Create(context.Background(), &CreateAddressRequest{
		PlaceID:          "place-123",
		FormattedAddress: "Outro endereço",
		City:             "Fortaleza",
		State:            "CE",
		Country:          "Brasil",
		Latitude:         -3.7,
		Longitude:        -38.5,
	}, testActor(models.RoleEmployee))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflict(err))
	assert.Equal(t, "Endereço já cadastrado.", err.Error())
}

func TestAddressesService_FindByID_MalformedID(t *testing.T) {
	service, _ := setupAddressesService(t, nil)

	_, err := service.FindByID(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "Endereço não encontrado", err.Error())
}

func TestAddressesService_Search(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Av. Santos Dumont Ceará Brasil", r.URL.Query().Get("q"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"place_id":123,"display_name":"Av. Santos Dumont, Fortaleza","lat":"-3.73","lon":"-38.52","type":"road"}]`))
	}))
	defer upstream.Close()

	service, _ := setupAddressesService(t, geocode.NewClientWithBaseURL(upstream.URL))

	results, err := service.Search(context.Background(), "Av. Santos Dumont")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(123), results[0].PlaceID)
	assert.Equal(t, "Av. Santos Dumont, Fortaleza", results[0].DisplayName)
}
