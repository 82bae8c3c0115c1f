package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"vista_hostel/internal/app"
	"vista_hostel/internal/domain"
)

type Handlers struct {
	Q    *app.QueryService
	Sess *app.SessionService
	Mess domain.MessInfo
	Info domain.HostelInfo
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/rooms", h.listRooms)
	s.mux.Get("/v1/rooms/{id}", h.getRoom)
	s.mux.Get("/v1/mess", h.getMess)
	s.mux.Get("/v1/info", h.getInfo)
	s.mux.Post("/v1/auth/login", h.login)
	s.mux.Post("/v1/auth/register", h.register)
	s.mux.Post("/v1/auth/logout", h.logout)
	s.mux.Get("/v1/auth/session", h.session)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSONWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- rooms ----

type roomSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Price       float64  `json:"price"`
	Rating      float64  `json:"rating"`
	Capacity    int      `json:"capacity"`
	Image       string   `json:"image"`
	Amenities   []string `json:"amenities"`
}

type roomsResponse struct {
	Items    []roomSummary `json:"items"`
	Total    int           `json:"total"`
	PriceMin float64       `json:"price_min"`
	PriceMax float64       `json:"price_max"`
}

type roomDetailResponse struct {
	roomSummary
	Images      []string             `json:"images"`
	Features    []string             `json:"features"`
	Details     roomDetails          `json:"details"`
	Coords      *domain.Coords       `json:"coords,omitempty"`
	Reviews     []domain.GuestReview `json:"reviews"`
	BookingLink string               `json:"booking_link,omitempty"`
}

type roomDetails struct {
	Size         string `json:"size"`
	BedType      string `json:"bed_type"`
	MaxOccupancy int    `json:"max_occupancy"`
	CheckIn      string `json:"check_in"`
	CheckOut     string `json:"check_out"`
}

func summarize(r domain.Room) roomSummary {
	return roomSummary{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Location:    r.Location,
		Price:       r.Price,
		Rating:      r.Rating,
		Capacity:    r.Capacity,
		Image:       r.Image,
		Amenities:   r.Amenities,
	}
}

// criteriaFromQuery maps the listing query params onto filter criteria.
// Absent price bounds leave the range unconstrained.
func criteriaFromQuery(r *http.Request) (domain.FilterCriteria, error) {
	q := r.URL.Query()
	c := domain.FilterCriteria{
		Search:    q.Get("q"),
		MinPrice:  0,
		MaxPrice:  math.MaxFloat64,
		Amenities: q["amenity"],
	}
	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return c, errors.New("min_price must be a non-negative number")
		}
		c.MinPrice = f
	}
	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f < 0 {
			return c, errors.New("max_price must be a non-negative number")
		}
		c.MaxPrice = f
	}
	if v := q.Get("capacity"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return c, errors.New("capacity must be a positive integer")
		}
		c.MinCapacity = n
	}
	return c, nil
}

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	criteria, err := criteriaFromQuery(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid filter", err.Error())
		return
	}
	page, err := h.Q.ListRooms(r.Context(), criteria)
	if err != nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not load rooms")
		return
	}

	items := make([]roomSummary, 0, len(page.Items))
	for _, room := range page.Items {
		items = append(items, summarize(room))
	}
	writeJSONWithETag(w, r, roomsResponse{
		Items:    items,
		Total:    page.Total,
		PriceMin: page.PriceMin,
		PriceMax: page.PriceMax,
	})
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	room, err := h.Q.GetRoom(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "room not found")
			return
		}
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "could not load room")
		return
	}

	resp := roomDetailResponse{
		roomSummary: summarize(room),
		Images:      room.Images,
		Features:    room.Features,
		Details: roomDetails{
			Size:         room.Details.Size,
			BedType:      room.Details.BedType,
			MaxOccupancy: room.Details.MaxOccupancy,
			CheckIn:      room.Details.CheckIn,
			CheckOut:     room.Details.CheckOut,
		},
		Coords:  room.Coords,
		Reviews: room.Reviews,
	}
	// the booking deep link is only exposed to authenticated sessions
	if h.Sess.IsAuthenticated() {
		resp.BookingLink = app.WhatsAppLink(h.Info.WhatsApp, room.Name)
	}
	writeJSONWithETag(w, r, resp)
}

// ---- mess & info ----

func (h *Handlers) getMess(w http.ResponseWriter, r *http.Request) {
	writeJSONWithETag(w, r, h.Mess)
}

func (h *Handlers) getInfo(w http.ResponseWriter, r *http.Request) {
	writeJSONWithETag(w, r, h.Info)
}

// ---- auth ----

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	State string       `json:"state"`
	User  *domain.User `json:"user,omitempty"`
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected JSON {email, password}")
		return
	}
	h.completeAuth(w, r, h.Sess.Login(r.Context(), req.Email, req.Password))
}

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "expected JSON {name, email, password}")
		return
	}
	h.completeAuth(w, r, h.Sess.Register(r.Context(), req.Name, req.Email, req.Password))
}

func (h *Handlers) completeAuth(w http.ResponseWriter, r *http.Request, ch <-chan domain.AuthResult) {
	res := <-ch
	switch {
	case res.Err == nil:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(sessionResponse{State: domain.StateAuthenticated.String(), User: &res.User})
	case errors.Is(res.Err, domain.ErrRateLimited):
		writeProblem(w, http.StatusTooManyRequests, "Too Many Attempts", "slow down and try again")
	case errors.Is(res.Err, domain.ErrInvalidCredentials):
		writeProblem(w, http.StatusUnauthorized, "Authentication Failed", "please check your credentials and try again")
	default:
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "authentication did not complete")
	}
}

func (h *Handlers) logout(w http.ResponseWriter, r *http.Request) {
	h.Sess.Logout(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) session(w http.ResponseWriter, r *http.Request) {
	snap := h.Sess.Current()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(sessionResponse{State: snap.State.String(), User: snap.User})
}
