package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/psiboxes/box-scheduler/internal/domain/booking"
)

func postJSON(r http.Handler, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestListSitesAPI(t *testing.T) {
	r := newTestRouter(&fakeRepo{}, &fakeGateway{})

	w := get(r, "/api/sites")

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Data  []struct{ Name string }
		Total int
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, "Antonio Bellet", res.Data[0].Name)
}

func TestAvailabilityAPI(t *testing.T) {
	loc, _ := time.LoadLocation("America/Santiago")
	gw := &fakeGateway{
		busy: []domain.BusyInterval{
			{
				Start: time.Date(2025, time.March, 10, 9, 0, 0, 0, loc),
				End:   time.Date(2025, time.March, 10, 12, 0, 0, 0, loc),
			},
		},
	}
	r := newTestRouter(&fakeRepo{}, gw)

	w := get(r, "/api/availability?site=Antonio+Bellet&date=2025-03-10")

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Total int
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 6, res.Total)
}

func TestAvailabilityAPIValidation(t *testing.T) {
	r := newTestRouter(&fakeRepo{}, &fakeGateway{})

	assert.Equal(t, http.StatusBadRequest, get(r, "/api/availability").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/availability?site=Antonio+Bellet&date=ayer").Code)
	assert.Equal(t, http.StatusBadRequest, get(r, "/api/availability?site=Providencia&date=2025-03-10").Code)
}

func TestCreateReservationAPI(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo, &fakeGateway{eventID: "evt-1"})

	w := postJSON(r, "/api/reservations", map[string]any{
		"site": "Antonio Bellet",
		"date": "2025-03-10",
		"hour": "9:00",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var res struct {
		Status       string `json:"status"`
		Psychologist string `json:"psychologist"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "confirmed", res.Status)
	assert.Equal(t, "EjemploPsicologo", res.Psychologist)
}

func TestCreateReservationAPIWithToken(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo, &fakeGateway{eventID: "evt-1"})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"name": "Ana Pérez",
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := postJSON(r, "/api/reservations", map[string]any{
		"site": "Las Urbinas",
		"date": "2025-03-10",
		"hour": "11:00",
	}, map[string]string{"Authorization": "Bearer " + signed})

	require.Equal(t, http.StatusCreated, w.Code)

	var res struct {
		Psychologist string `json:"psychologist"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Ana Pérez", res.Psychologist)
}

func TestCreateReservationAPIConflict(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo, &fakeGateway{eventID: "evt-1"})

	body := map[string]any{
		"site": "Antonio Bellet",
		"date": "2025-03-10",
		"hour": "9:00",
	}

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/reservations", body, nil).Code)

	w := postJSON(r, "/api/reservations", body, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "slot_taken")
}

func TestCreateReservationAPIGatewayDown(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo, &fakeGateway{insertErr: errors.New("unreachable")})

	w := postJSON(r, "/api/reservations", map[string]any{
		"site": "Antonio Bellet",
		"date": "2025-03-10",
		"hour": "9:00",
	}, nil)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "calendar_unavailable")
}

func TestCreatePaymentAPI(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo, &fakeGateway{})

	w := postJSON(r, "/api/payments", map[string]any{
		"psychologist": "Ana Pérez",
		"amount":       45000,
		"date":         "2025-03-10",
		"description":  "Arriendo box marzo",
	}, nil)

	require.Equal(t, http.StatusCreated, w.Code)
	require.Len(t, repo.payments, 1)

	// Missing required fields fail binding.
	w = postJSON(r, "/api/payments", map[string]any{"amount": 45000}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Len(t, repo.payments, 1)
}

func TestReportAPI(t *testing.T) {
	repo := &fakeRepo{}
	r := newTestRouter(repo, &fakeGateway{eventID: "evt-1"})

	require.Equal(t, http.StatusCreated, postJSON(r, "/api/reservations", map[string]any{
		"site": "Antonio Bellet",
		"date": "2025-03-10",
		"hour": "9:00",
	}, nil).Code)

	w := get(r, "/api/report")
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Reservations []struct{ Site string }
		Payments     []struct{ Amount float64 }
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Len(t, res.Reservations, 1)
	assert.Equal(t, "Antonio Bellet", res.Reservations[0].Site)
	assert.Empty(t, res.Payments)
}
