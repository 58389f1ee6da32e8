package http

import (
	"net/http"
	"time"

	"bikram/internal/bs"
	"bikram/internal/log"
)

// ConversionResponse describes one day in both calendars.
type ConversionResponse struct {
	BS        string `json:"bs"`
	AD        string `json:"ad"`
	BSLocal   string `json:"bs_local"`
	MonthName string `json:"month_name"`
	Weekday   string `json:"weekday"`
}

// MonthResponse is the grid of a BS month.
type MonthResponse struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	Name         string   `json:"name"`
	Days         int      `json:"days"`
	Start        string   `json:"start_ad"`
	End          string   `json:"end_ad"`
	StartWeekday string   `json:"start_weekday"`
	Weekdays     []string `json:"weekdays"`
	Weeks        [][7]int `json:"weeks"`
}

// NumeralsResponse pairs an input with its Devanagari rendering.
type NumeralsResponse struct {
	Value  string `json:"value"`
	Nepali string `json:"nepali"`
}

// CurrencyResponse is a parsed amount with its Lakh-grouped rendering.
type CurrencyResponse struct {
	Amount    string `json:"amount"`
	Paisa     int64  `json:"paisa"`
	Formatted string `json:"formatted"`
}

const immutableMaxAge = 86400

func handleHealth(w http.ResponseWriter, r *http.Request) {
	NewJSONResponse().Body(map[string]string{"status": "ok"}).Write(w)
}

// handleReady reports ready only while the clock is inside the table.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if _, _, err := s.svc.Today(r.Context()); err != nil {
		ServiceUnavailableError("calendar does not cover the current date").Write(w)
		return
	}
	NewJSONResponse().Body(map[string]string{"status": "ready"}).Write(w)
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	d, now, err := s.svc.Today(r.Context())
	if err != nil {
		s.writeError(w, r, err, log.OpToday)
		return
	}
	NewJSONResponse().
		Header("Cache-Control", "no-store").
		Body(s.conversion(d, now, s.language(r))).
		Write(w)
}

func (s *Server) handleADToBS(w http.ResponseWriter, r *http.Request) {
	t, err := ParseADDate(r.URL.Query().Get("date"))
	if err != nil {
		s.writeError(w, r, err, log.OpADToBS)
		return
	}
	d, err := s.svc.ADToBS(r.Context(), t)
	if err != nil {
		s.writeError(w, r, err, log.OpADToBS)
		return
	}
	NewJSONResponse().
		Cacheable(immutableMaxAge).
		Body(s.conversion(d, t, s.language(r))).
		Write(w)
}

func (s *Server) handleBSToAD(w http.ResponseWriter, r *http.Request) {
	d, ad, err := s.svc.BSToAD(r.Context(), sanitizeInput(r.URL.Query().Get("date")))
	if err != nil {
		s.writeError(w, r, err, log.OpBSToAD)
		return
	}
	NewJSONResponse().
		Cacheable(immutableMaxAge).
		Body(s.conversion(d, ad, s.language(r))).
		Write(w)
}

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	p, err := ParseMonthParams(r)
	if err != nil {
		s.writeError(w, r, err, log.OpMonth)
		return
	}
	m, err := s.svc.Month(r.Context(), p.Year, p.Month)
	if err != nil {
		s.writeError(w, r, err, log.OpMonth)
		return
	}

	lang := s.language(r)
	weekdays := make([]string, 7)
	for i := range weekdays {
		weekdays[i] = bs.WeekdayName(time.Weekday(i), lang)
	}
	NewJSONResponse().
		Cacheable(immutableMaxAge).
		Body(MonthResponse{
			Year:         m.Year,
			Month:        m.Month,
			Name:         m.Name(lang),
			Days:         m.Days,
			Start:        formatAD(m.Start),
			End:          formatAD(m.End),
			StartWeekday: bs.WeekdayName(m.StartWeekday, lang),
			Weekdays:     weekdays,
			Weeks:        m.Weeks(),
		}).
		Write(w)
}

func (s *Server) handleNumerals(w http.ResponseWriter, r *http.Request) {
	value := sanitizeInput(r.URL.Query().Get("value"))
	if value == "" {
		BadRequestError("missing value parameter").Write(w)
		return
	}
	NewJSONResponse().
		Body(NumeralsResponse{Value: value, Nepali: s.svc.Numerals(value)}).
		Write(w)
}

func (s *Server) handleCurrency(w http.ResponseWriter, r *http.Request) {
	m, formatted, err := s.svc.Currency(r.Context(), sanitizeInput(r.URL.Query().Get("amount")))
	if err != nil {
		s.writeError(w, r, err, log.OpCurrency)
		return
	}
	NewJSONResponse().
		Body(CurrencyResponse{Amount: m.String(), Paisa: m.Paisa, Formatted: formatted}).
		Write(w)
}

func (s *Server) conversion(d bs.Date, ad time.Time, lang bs.Language) ConversionResponse {
	name, _ := bs.MonthName(d.Month, lang)
	return ConversionResponse{
		BS:        d.String(),
		AD:        formatAD(ad),
		BSLocal:   localDigits(d.String(), lang),
		MonthName: name,
		Weekday:   bs.WeekdayName(ad.Weekday(), lang),
	}
}

// language negotiates the response language and records the choice.
func (s *Server) language(r *http.Request) bs.Language {
	lang := NegotiateLanguage(r, s.defaultLang)
	log.FromContext(r.Context()).DebugContext(r.Context(), "Response language negotiated",
		log.FieldLanguage, string(lang),
		log.FieldPath, r.URL.Path)
	return lang
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error, op string) {
	resp := ErrorFor(err)
	if StatusForError(err) == http.StatusInternalServerError {
		log.NewStructuredLogger(log.FromContext(r.Context())).
			LogError(r.Context(), "Request failed", err, log.ComponentHTTP, op, nil)
	}
	resp.Write(w)
}
