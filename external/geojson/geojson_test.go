package geojson

import (
	"context"
	"errors"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const counties = `{"type":"FeatureCollection","features":[
{"type":"Feature","id":"01001","properties":{"NAME":"Autauga"},"geometry":{"type":"Polygon","coordinates":[[[-86.49,32.34],[-86.71,32.40],[-86.41,32.70],[-86.49,32.34]]]}},
{"type":"Feature","id":"53033","properties":{"NAME":"King"},"geometry":{"type":"Polygon","coordinates":[[[-122.4,47.2],[-121.0,47.2],[-121.0,47.8],[-122.4,47.2]]]}}
]}`

func TestCountiesFromURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(counties))
	}))
	defer ts.Close()

	s := New(ts.Client(), ts.URL+"/geojson-counties-fips.json", 0)
	fc, err := s.Counties(context.Background())
	assert.Nil(t, err, "wrong Counties")
	assert.Equal(t, "FeatureCollection", fc.Type)
	assert.Len(t, fc.Features, 2)
	assert.Equal(t, "01001", fc.Features[0].ID)
	assert.Equal(t, "Autauga", fc.Features[0].Properties["NAME"])
	assert.Equal(t, "Polygon", fc.Features[1].Geometry.Type)
}

func TestCountiesFromFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "geojson")
	assert.Nil(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "counties.json")
	assert.Nil(t, ioutil.WriteFile(file, []byte(counties), 0600))

	fc, err := New(nil, file, 0).Counties(context.Background())
	assert.Nil(t, err, "wrong Counties")
	assert.Len(t, fc.Features, 2)
}

func TestCountiesStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := New(ts.Client(), ts.URL, 0).Counties(context.Background())
	assert.True(t, errors.Is(err, ErrResponseStatus), "wrong error")
}

func TestCountiesWithoutFeature(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"type":"FeatureCollection","features":[]}`))
	}))
	defer ts.Close()

	_, err := New(ts.Client(), ts.URL, 0).Counties(context.Background())
	assert.Equal(t, ErrNoFeature, err)
}

func TestCountiesCache(t *testing.T) {
	hits := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(counties))
	}))
	defer ts.Close()

	now := time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)
	s := New(ts.Client(), ts.URL, time.Hour).(*source)
	s.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_, err := s.Counties(context.Background())
		assert.Nil(t, err)
	}
	assert.Equal(t, 1, hits, "cached collection not reused")

	now = now.Add(2 * time.Hour)
	_, err := s.Counties(context.Background())
	assert.Nil(t, err)
	assert.Equal(t, 2, hits, "expired collection not reloaded")
}
