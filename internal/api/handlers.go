package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/smokyabdulrahman/adhan/internal/adhan"
)

// calcQueryKeys are the query parameters that override the server defaults.
// "school" is accepted for callers used to the Al Adhan API.
var calcQueryKeys = []string{
	"method", "madhab", "school", "high_latitude_rule",
	"fajr_angle", "isha_angle", "isha_interval",
	"adjustments", "timezone",
}

// request is a parsed calculation request.
type request struct {
	coords adhan.Coordinates
	params adhan.CalculationParameters
	loc    *time.Location
}

func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, newResponse(http.StatusBadRequest, err.Error()))
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError,
		newResponse(http.StatusInternalServerError, "internal error"))
}

// parseCoordinates reads the required latitude and longitude parameters.
func parseCoordinates(c *gin.Context) (adhan.Coordinates, error) {
	var vals [2]float64
	for i, key := range []string{"latitude", "longitude"} {
		raw := strings.TrimSpace(c.Query(key))
		if raw == "" {
			return adhan.Coordinates{}, fmt.Errorf("%s is required", key)
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return adhan.Coordinates{}, fmt.Errorf("invalid %s %q", key, raw)
		}
		vals[i] = v
	}
	return adhan.NewCoordinates(vals[0], vals[1])
}

// parseRequest resolves coordinates, parameters and time zone. Parameters not
// in the query come from the server defaults; responses default to UTC.
func (s *Server) parseRequest(c *gin.Context) (request, error) {
	coords, err := parseCoordinates(c)
	if err != nil {
		return request{}, err
	}

	cfg := s.defaults
	for _, key := range calcQueryKeys {
		if v := strings.TrimSpace(c.Query(key)); v != "" {
			if err := cfg.Set(key, v); err != nil {
				return request{}, err
			}
		}
	}

	params, err := cfg.Parameters()
	if err != nil {
		return request{}, err
	}

	loc := time.UTC
	if cfg.Timezone != "" {
		if loc, err = cfg.Location(); err != nil {
			return request{}, err
		}
	}

	return request{coords: coords, params: params, loc: loc}, nil
}

// parseDate reads the optional date parameter (YYYY-MM-DD or DD-MM-YYYY),
// defaulting to today in loc.
func (s *Server) parseDate(c *gin.Context, loc *time.Location) (adhan.DateComponents, error) {
	raw := strings.TrimSpace(c.Query("date"))
	if raw == "" {
		return adhan.DateFromTime(s.now().In(loc)), nil
	}
	if d, err := adhan.ParseDate(raw); err == nil {
		return d, nil
	}
	if t, err := time.Parse("02-01-2006", raw); err == nil {
		return adhan.DateFromTime(t), nil
	}
	return adhan.DateComponents{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", raw)
}

// schedule computes one day. Configuration errors were caught while parsing,
// so an error here is unexpected.
func (r request) schedule(date adhan.DateComponents) (*adhan.PrayerTimes, error) {
	return adhan.NewPrayerTimes(r.coords, date, r.params)
}

// handleTimings returns one day's schedule.
// GET /api/v1/timings?latitude=&longitude=&date=
func (s *Server) handleTimings(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	date, err := s.parseDate(c, req.loc)
	if err != nil {
		badRequest(c, err)
		return
	}

	pt, err := req.schedule(date)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, newResponse(http.StatusOK, newData(pt, req.loc)))
}

// handleCalendar returns the schedule for every day of a month.
// GET /api/v1/calendar?latitude=&longitude=&year=&month=
func (s *Server) handleCalendar(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	today := adhan.DateFromTime(s.now().In(req.loc))
	year, err := intQuery(c, "year", today.Year, 1, 9999)
	if err != nil {
		badRequest(c, err)
		return
	}
	month, err := intQuery(c, "month", int(today.Month), 1, 12)
	if err != nil {
		badRequest(c, err)
		return
	}

	var days []Data
	for d := adhan.NewDateComponents(year, time.Month(month), 1); d.Month == time.Month(month); d = d.AddDays(1) {
		pt, err := req.schedule(d)
		if err != nil {
			internalError(c, err)
			return
		}
		days = append(days, newData(pt, req.loc))
	}
	c.JSON(http.StatusOK, newResponse(http.StatusOK, days))
}

// handleSunnah returns the middle and last third of the night after a date's
// Maghrib.
// GET /api/v1/sunnah?latitude=&longitude=&date=
func (s *Server) handleSunnah(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	date, err := s.parseDate(c, req.loc)
	if err != nil {
		badRequest(c, err)
		return
	}

	pt, err := req.schedule(date)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, newResponse(http.StatusOK, newSunnahData(pt, req.loc)))
}

// handleQibla returns the bearing to the Kaaba.
// GET /api/v1/qibla?latitude=&longitude=
func (s *Server) handleQibla(c *gin.Context) {
	coords, err := parseCoordinates(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, newResponse(http.StatusOK, newQiblaData(coords)))
}

// handleMethods lists the calculation presets keyed like the Al Adhan
// /methods endpoint.
// GET /api/v1/methods
func (s *Server) handleMethods(c *gin.Context) {
	methods := make(map[string]MethodInfo)
	for _, m := range adhan.Methods() {
		methods[m.String()] = newMethodInfo(m.Parameters())
	}
	c.JSON(http.StatusOK, newResponse(http.StatusOK, methods))
}

func intQuery(c *gin.Context, key string, def, lo, hi int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	if v < lo || v > hi {
		return 0, errors.New(key + " out of range")
	}
	return v, nil
}
