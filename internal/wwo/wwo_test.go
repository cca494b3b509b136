package wwo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile("testdata/forecast.json")
	require.NoError(t, err)
	return data
}

func TestDecode(t *testing.T) {
	report, err := Decode(strings.NewReader(string(fixture(t))), "")
	require.NoError(t, err)

	assert.Equal(t, "Guangzhou, China", report.Location)

	cur := report.Current
	assert.Nil(t, cur.TempC)
	require.NotNil(t, cur.TempCAlt)
	assert.Equal(t, 24, cur.Temperature())
	assert.Equal(t, 26, cur.FeelsLikeC)
	assert.Equal(t, 10, cur.WindKmph)
	assert.Nil(t, cur.WindGustKmph)
	assert.Nil(t, cur.ChanceOfRain)
	assert.Equal(t, "E", cur.WindDir16)
	assert.Equal(t, 113, cur.WeatherCode)
	assert.Equal(t, "Sunny", cur.Description)
	assert.Empty(t, cur.AltDesc)
	assert.Equal(t, "06:12 AM", cur.ObservedAt)

	require.Len(t, report.Days, 2)
	day := report.Days[0]
	assert.Equal(t, time.Date(2015, 5, 2, 0, 0, 0, 0, time.UTC), day.Date)
	assert.Equal(t, 29, day.MaxTempC)
	assert.Equal(t, 22, day.MinTempC)
	assert.Equal(t, 7, day.UVIndex)
	require.Len(t, day.Astronomy, 1)
	assert.Equal(t, "05:52 AM", day.Astronomy[0].Sunrise)

	require.Len(t, day.Hourly, 8)
	h := day.Hourly[3]
	assert.Equal(t, "900", h.Time)
	assert.Equal(t, 23, h.Temperature())
	require.NotNil(t, h.WindGustKmph)
	assert.Equal(t, 14, *h.WindGustKmph)
	require.NotNil(t, h.ChanceOfRain)
	assert.Equal(t, 30, *h.ChanceOfRain)
	assert.InDelta(t, 0.3, h.PrecipMM, 1e-9)
}

func TestDecodeAlternateLanguage(t *testing.T) {
	report, err := Decode(strings.NewReader(string(fixture(t))), "zh")
	require.NoError(t, err)

	assert.Equal(t, "晴", report.Current.AltDesc)
	assert.Equal(t, "局部多云", report.Days[0].Hourly[0].AltDesc)
	assert.Equal(t, "Partly cloudy", report.Days[0].Hourly[0].Description)

	report, err = Decode(strings.NewReader(string(fixture(t))), "de")
	require.NoError(t, err)
	assert.Empty(t, report.Current.AltDesc)
}

func TestDecodeAPIError(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"data":{"error":[{"msg":"Unable to find any matching weather location"}]}}`), "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Contains(t, apiErr.Message, "matching weather location")
}

func TestDecodeMissingTemperature(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"data":{"current_condition":[{"FeelsLikeC":"3"}]}}`), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing temperature")
}

func TestDecodeBadDate(t *testing.T) {
	doc := `{"data":{"current_condition":[{"temp_C":"3"}],"weather":[{"date":"02/05/2015"}]}}`
	_, err := Decode(strings.NewReader(doc), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")
}

func TestDecodeStripsControlCharacters(t *testing.T) {
	doc := `{"data":{"current_condition":[{"temp_C":"3","weatherDesc":[{"value":"\u001b[31mRain"}]}]}}`
	report, err := Decode(strings.NewReader(doc), "")
	require.NoError(t, err)
	assert.Equal(t, "[31mRain", report.Current.Description)
}

func TestFetch(t *testing.T) {
	data := fixture(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Guangzhou", q.Get("q"))
		assert.Equal(t, "secret", q.Get("key"))
		assert.Equal(t, "json", q.Get("format"))
		assert.Equal(t, "3", q.Get("num_of_days"))
		assert.Equal(t, "zh", q.Get("lang"))
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	}))
	defer srv.Close()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	c := NewClient(srv.URL, " secret\n", time.Second, logger)
	report, err := c.Fetch(context.Background(), Query{Location: "Guangzhou", Days: 3, Lang: "zh"})
	require.NoError(t, err)
	assert.Equal(t, "晴", report.Current.AltDesc)

	require.NotEmpty(t, hook.AllEntries())
	for _, e := range hook.AllEntries() {
		assert.NotContains(t, e.Data["url"], "secret")
	}
}

func TestFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "k", 0, nil).Fetch(context.Background(), Query{Location: "Oslo"})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
	assert.Equal(t, "forbidden", statusErr.Body)
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, "k", time.Second, nil).Fetch(ctx, Query{Location: "Oslo"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFetchEmptyLocation(t *testing.T) {
	_, err := NewClient("", "k", 0, nil).Fetch(context.Background(), Query{})
	assert.Error(t, err)
}

func TestRedacted(t *testing.T) {
	c := NewClient("https://example.com/weather.ashx", "abc123", 0, nil)
	u, err := c.requestURL(Query{Location: "Oslo"})
	require.NoError(t, err)

	assert.Contains(t, u.String(), "key=abc123")
	assert.NotContains(t, redacted(u), "abc123")
	assert.Contains(t, redacted(u), "key=REDACTED")
}
