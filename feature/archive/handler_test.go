package archive_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"scan-verifier/core/database"
	"scan-verifier/core/storage/mocks"
	"scan-verifier/feature/archive"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestHandlers(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, archive.NewRepository(db).Migrate())

	client := new(mocks.Client)
	empty := make(chan minio.ObjectInfo)
	close(empty)
	client.On("ListObjects", mock.Anything, "scan-reports", mock.Anything).Return((<-chan minio.ObjectInfo)(empty))

	feature := archive.NewFeature(client, "scan-reports", db, zap.NewNop())
	assert.True(t, feature.IsEnabled())
	assert.Equal(t, "archive", feature.Name())

	app := fiber.New()
	require.NoError(t, feature.Load(app))

	t.Run("List", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/archive?limit=5", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var listing archive.Listing
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&listing))
		assert.Empty(t, listing.Sessions)
		assert.Empty(t, listing.Objects)
	})

	t.Run("Schema", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/archive/schema", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var report archive.SchemaReport
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
		assert.True(t, report.Matched)
	})
}

func TestHandlers_SchemaWithoutDatabase(t *testing.T) {
	feature := archive.NewFeature(new(mocks.Client), "scan-reports", nil, zap.NewNop())
	app := fiber.New()
	require.NoError(t, feature.Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/archive/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
