package geojson

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/bitmark-inc/covid-charts/schema"
)

const (
	logPrefix = "geojson"

	DefaultCountiesURL = "https://raw.githubusercontent.com/plotly/datasets/master/geojson-counties-fips.json"
)

var (
	ErrResponseStatus = errors.New("unexpected response status")
	ErrNoFeature      = errors.New("geojson has no feature")
)

// Source - interface to load county boundaries
type Source interface {
	Counties(ctx context.Context) (schema.FeatureCollection, error)
}

type source struct {
	client   *http.Client
	location string
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	cached   *schema.FeatureCollection
	cachedAt time.Time
}

// New - new county boundary source. location is an http(s) URL or a local
// file path. A positive ttl keeps the decoded collection for that long.
func New(client *http.Client, location string, ttl time.Duration) Source {
	if location == "" {
		location = DefaultCountiesURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &source{
		client:   client,
		location: location,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *source) Counties(ctx context.Context) (schema.FeatureCollection, error) {
	if s.ttl <= 0 {
		return s.load(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && s.now().Sub(s.cachedAt) < s.ttl {
		return *s.cached, nil
	}

	fc, err := s.load(ctx)
	if err != nil {
		return schema.FeatureCollection{}, err
	}
	s.cached = &fc
	s.cachedAt = s.now()
	return fc, nil
}

func (s *source) load(ctx context.Context) (schema.FeatureCollection, error) {
	var data []byte
	var err error
	if strings.HasPrefix(s.location, "http://") || strings.HasPrefix(s.location, "https://") {
		data, err = s.download(ctx)
	} else {
		data, err = ioutil.ReadFile(s.location)
	}
	if err != nil {
		return schema.FeatureCollection{}, err
	}

	var fc schema.FeatureCollection
	if err := json.Unmarshal(data, &fc); err != nil {
		return schema.FeatureCollection{}, fmt.Errorf("decode geojson: %w", err)
	}
	if len(fc.Features) == 0 {
		return schema.FeatureCollection{}, ErrNoFeature
	}

	log.WithFields(log.Fields{
		"prefix":   logPrefix,
		"location": s.location,
		"features": len(fc.Features),
	}).Info("loaded county boundaries")
	return fc, nil
}

func (s *source) download(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.location, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.WithFields(log.Fields{"prefix": logPrefix, "url": s.location, "error": err}).Error("get geojson")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d from %s", ErrResponseStatus, resp.StatusCode, s.location)
	}
	return ioutil.ReadAll(resp.Body)
}
