package web

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"timeworth/internal/handoff"
	"timeworth/internal/locale"
	"timeworth/internal/logger"
	"timeworth/internal/normalize"
	"timeworth/internal/pay"
	"timeworth/internal/share"
)

// Form and query parameter names of the calculator.
const (
	paramWage    = "wage"
	paramHours   = "h"
	paramMinutes = "m"
	paramHoliday = "holiday"
	paramAmount  = "amount"
)

const appTitle = "TimeWorth"

type pageMeta struct {
	Title       string
	Description string
	Version     string
}

type calcPage struct {
	pageMeta

	Wage    string
	Hours   string
	Minutes string
	Holiday bool

	PayDisplay       string
	HolidayDisplay   string
	EffectiveMinutes int
	HasResult        bool

	CardURL   string
	ShareURL  string
	ShareText string
}

type cardPage struct {
	pageMeta
	handoff.Display
}

type donateAmount struct {
	Value  int64
	Label  string
	Active bool
}

type donatePage struct {
	pageMeta

	AccountLine string
	Account     string
	Amounts     []donateAmount
	Selected    string
	Memo        string
}

// calcState is the sanitized input of one calculator request.
type calcState struct {
	wage, hours, minutes normalize.Field
	holiday              bool
}

func readCalcState(get func(string) string) calcState {
	return calcState{
		wage:    normalize.NewField(get(paramWage)),
		hours:   normalize.NewField(get(paramHours)),
		minutes: normalize.NewField(get(paramMinutes)),
		holiday: parseFlag(get(paramHoliday)),
	}
}

func (c calcState) compute() pay.Result {
	return pay.Compute(pay.Input{
		Wage:    c.wage.Digits(),
		Hours:   c.hours.Digits(),
		Minutes: c.minutes.Digits(),
	}, pay.Options{Holiday: c.holiday})
}

// query returns the GET parameters for c, omitting empty fields.
func (c calcState) query() url.Values {
	v := url.Values{}
	if !c.wage.Empty() {
		v.Set(paramWage, c.wage.Digits())
	}
	if !c.hours.Empty() {
		v.Set(paramHours, c.hours.Digits())
	}
	if !c.minutes.Empty() {
		v.Set(paramMinutes, c.minutes.Digits())
	}
	if c.holiday {
		v.Set(paramHoliday, "1")
	}
	return v
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	state := readCalcState(r.URL.Query().Get)
	res := s.calculate(state)

	data := calcPage{
		pageMeta: s.meta(appTitle, "시급과 시간을 입력하면 금액을 바로 계산해주는 앱"),
		Wage:     state.wage.Display(),
		Hours:    state.hours.Digits(),
		Minutes:  state.minutes.Digits(),
		Holiday:  state.holiday,

		PayDisplay:       res.PayDisplay(),
		HolidayDisplay:   res.HolidayDisplay(),
		EffectiveMinutes: res.EffectiveMinutes,
		HasResult:        res.Pay.IsPositive(),
	}
	if data.HasResult {
		payload := share.NewPayload(s.requestBase(r), res)
		data.CardURL = handoff.CardURL("", res)
		data.ShareURL = payload.URL
		data.ShareText = payload.Text
		data.Description = payload.Text
	}
	s.render(w, r, "index", data)
}

// handleCalc redirects to GET with the sanitized query so the URL reflects
// the calculation.
func (s *Server) handleCalc(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	state := readCalcState(r.PostForm.Get)
	redir := "/"
	if q := state.query(); len(q) > 0 {
		redir += "?" + q.Encode()
	}
	http.Redirect(w, r, redir, http.StatusFound)
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	d := handoff.Decode(r.URL.Query()).Display()
	s.metrics.CardViews.Inc()

	meta := s.meta("결과 카드 · "+appTitle, "")
	if d.Pay != locale.Placeholder {
		meta.Description = "내 시간은 " + d.Pay + ". " + share.ShareTagline
	}
	s.render(w, r, "card", cardPage{pageMeta: meta, Display: d})
}

func (s *Server) handleDonate(w http.ResponseWriter, r *http.Request) {
	amount, _ := strconv.ParseInt(strings.TrimSpace(r.URL.Query().Get(paramAmount)), 10, 64)
	selected := share.SelectAmount(amount)

	amounts := make([]donateAmount, 0, len(share.SuggestedAmounts))
	for _, a := range share.SuggestedAmounts {
		amounts = append(amounts, donateAmount{Value: a, Label: share.Amount(a), Active: a == selected})
	}

	s.render(w, r, "donate", donatePage{
		pageMeta:    s.meta("후원하기 · "+appTitle, ""),
		AccountLine: s.donation.AccountLine(),
		Account:     s.donation.Account,
		Amounts:     amounts,
		Selected:    share.Amount(selected),
		Memo:        s.donation.Memo(selected),
	})
}

type apiPayResponse struct {
	Valid            bool   `json:"valid"`
	Pay              string `json:"pay"`
	PayDisplay       string `json:"payDisplay"`
	EffectiveHours   string `json:"effectiveHours"`
	EffectiveMinutes int    `json:"effectiveMinutes"`
	HolidayDisplay   string `json:"holidayDisplay,omitempty"`
	WageDisplay      string `json:"wageDisplay"`
	CardURL          string `json:"cardUrl,omitempty"`
	ShareURL         string `json:"shareUrl,omitempty"`
	ShareText        string `json:"shareText"`
}

// handleAPIPay backs the per-keystroke updates of the calculator page.
func (s *Server) handleAPIPay(w http.ResponseWriter, r *http.Request) {
	state := readCalcState(r.URL.Query().Get)
	res := s.calculate(state)

	out := apiPayResponse{
		Valid:            res.Valid,
		Pay:              res.RoundedPay().String(),
		PayDisplay:       res.PayDisplay(),
		EffectiveHours:   res.EffectiveHours.String(),
		EffectiveMinutes: res.EffectiveMinutes,
		HolidayDisplay:   res.HolidayDisplay(),
		WageDisplay:      state.wage.Display(),
		ShareText:        share.Text(res),
	}
	if res.Pay.IsPositive() {
		out.CardURL = handoff.CardURL("", res)
		out.ShareURL = handoff.CardURL(s.requestBase(r), res)
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		logger.FromContext(r.Context()).Warn("Failed to write response", "error", err)
	}
}

func (s *Server) calculate(state calcState) pay.Result {
	res := state.compute()
	if !state.wage.Empty() {
		s.metrics.ObserveCalculation(res.Valid)
	}
	return res
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tpl.ExecuteTemplate(w, name, data); err != nil {
		logger.FromContext(r.Context()).Error("Template render failed", "template", name, "error", err)
	}
}

func (s *Server) meta(title, description string) pageMeta {
	return pageMeta{Title: title, Description: description, Version: s.version}
}

// requestBase is the origin share links point at.
func (s *Server) requestBase(r *http.Request) string {
	if s.baseURL != "" {
		return s.baseURL
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p == "http" || p == "https" {
		scheme = p
	}
	return scheme + "://" + r.Host
}

func parseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
