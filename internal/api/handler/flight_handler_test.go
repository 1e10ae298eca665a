package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/skywings/booking-system/internal/core/domain"
	"github.com/skywings/booking-system/internal/core/ports"
)

func TestFlightHandler_List_AppliesQuery(t *testing.T) {
	e := echo.New()
	flights := &stubFlightService{flights: []domain.Flight{
		{ID: 2, From: "Paris (CDG)", To: "Tokyo (NRT)", Price: 1200, Class: domain.ClassFirst},
		{ID: 1, From: "New York (JFK)", To: "London (LHR)", Price: 450, Class: domain.ClassEconomy},
	}}
	h := NewFlightHandler(flights)

	req := httptest.NewRequest(http.MethodGet, "/v1/flights?q=jfk&class=economy&sort=price", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Items []domain.Flight `json:"items"`
		Total int             `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Total != 1 || resp.Items[0].ID != 1 {
		t.Fatalf("query not applied: %+v", resp)
	}
}

func TestFlightHandler_Create_ValidPayload(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	flights := &stubFlightService{}
	h := NewFlightHandler(flights)

	body := `{
		"airline": "SkyWings",
		"flightNumber": "SW-500",
		"from": "Miami (MIA)",
		"to": "Chicago (ORD)",
		"departure": "9:00 AM",
		"arrival": "11:30 AM",
		"duration": "2h 30m",
		"date": "2026-08-01",
		"price": 320,
		"class": "Economy",
		"status": "Scheduled",
		"capacity": 180
	}`
	req := jsonRequest(http.MethodPost, "/v1/flights", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if len(flights.flights) != 1 {
		t.Fatalf("flight not added: %+v", flights.flights)
	}
}

func TestFlightHandler_Create_RejectsUnknownClass(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	flights := &stubFlightService{}
	h := NewFlightHandler(flights)

	body := `{"airline":"X","flightNumber":"X-1","from":"A","to":"B","date":"2026-08-01","price":1,"class":"Steerage","status":"Scheduled","capacity":1}`
	req := jsonRequest(http.MethodPost, "/v1/flights", body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 validation error, got %v", err)
	}
	if len(flights.flights) != 0 {
		t.Fatal("invalid payload must not add a flight")
	}
}

func TestFlightHandler_Update_RejectsNonNumericID(t *testing.T) {
	e := echo.New()
	e.Validator = NewValidator()
	h := NewFlightHandler(&stubFlightService{})

	req := jsonRequest(http.MethodPatch, "/v1/flights/abc", `{"price": 10}`)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestFlightHandler_Stats(t *testing.T) {
	e := echo.New()
	flights := &stubFlightService{stats: ports.FlightStats{TotalFlights: 6, ActiveFlights: 4, TotalRevenue: 2000}}
	h := NewFlightHandler(flights)

	req := httptest.NewRequest(http.MethodGet, "/v1/flights/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["totalFlights"] != float64(6) || resp["totalRevenue"] != float64(2000) {
		t.Fatalf("unexpected stats payload: %v", resp)
	}
}
