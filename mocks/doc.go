package mocks

//go:generate mockgen -destination=covid.go -package=mocks github.com/bitmark-inc/covid-charts/external/covid Provider
//go:generate mockgen -destination=geojson.go -package=mocks github.com/bitmark-inc/covid-charts/external/geojson Source
