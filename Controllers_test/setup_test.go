package Controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pandugalih/kedai-pos/cart"
	"github.com/pandugalih/kedai-pos/database"
	"github.com/pandugalih/kedai-pos/models"
	"github.com/pandugalih/kedai-pos/router"
	"github.com/pandugalih/kedai-pos/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.InitLogger()
	os.Exit(m.Run())
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ctl_%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// seedCafe mengisi menu standar: Kopi Susu 18000, Americano 15000,
// Roti Bakar 8000.
func seedCafe(t *testing.T, db *gorm.DB) (kopi, americano, roti models.Menu) {
	t.Helper()
	minuman := models.MenuCategory{Name: "Kopi"}
	makanan := models.MenuCategory{Name: "Makanan"}
	require.NoError(t, db.Create(&minuman).Error)
	require.NoError(t, db.Create(&makanan).Error)

	kopi = models.Menu{CategoryID: minuman.ID, Name: "Kopi Susu", Price: 18000, Status: models.MenuStatusAvailable}
	americano = models.Menu{CategoryID: minuman.ID, Name: "Americano", Price: 15000, Status: models.MenuStatusAvailable}
	roti = models.Menu{CategoryID: makanan.ID, Name: "Roti Bakar", Price: 8000, Status: models.MenuStatusAvailable}
	require.NoError(t, db.Create(&kopi).Error)
	require.NoError(t, db.Create(&americano).Error)
	require.NoError(t, db.Create(&roti).Error)
	return kopi, americano, roti
}

func newServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	db := setupTestDB(t)
	return router.SetupRouter(db, cart.NewMemoryStore()), db
}

// doJSON mengirim request JSON ke router test dan mengembalikan recorder-nya.
func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func dataObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	data, ok := parseBody(t, w)["data"].(map[string]interface{})
	require.True(t, ok, "response data is not an object: %s", w.Body.String())
	return data
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	data, ok := parseBody(t, w)["data"].([]interface{})
	require.True(t, ok, "response data is not a list: %s", w.Body.String())
	return data
}

func staffToken(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(1, role)
	require.NoError(t, err)
	return "Bearer " + token
}

func cartHeaders(sessionKey string) map[string]string {
	return map[string]string{"X-Cart-Session": sessionKey}
}
