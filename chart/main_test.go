package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/covid-charts/schema"
)

var day0 = time.Date(2020, 1, 22, 0, 0, 0, 0, time.UTC)

// dailyTable returns a table of n consecutive days starting at day0 with the
// given column filled by fn.
func dailyTable(t *testing.T, n int, fn func(i int) map[string]float64) schema.Table {
	index := make([]time.Time, n)
	columns := map[string][]float64{}
	for i := 0; i < n; i++ {
		index[i] = day0.AddDate(0, 0, i)
		for name, v := range fn(i) {
			if _, ok := columns[name]; !ok {
				columns[name] = make([]float64, n)
			}
			columns[name][i] = v
		}
	}

	table, err := schema.NewTable(index, columns)
	assert.Nil(t, err, "wrong NewTable")
	return table
}

func optionOf(t *testing.T, f *fragment) map[string]interface{} {
	option, err := f.option()
	assert.Nil(t, err, "wrong option")
	return option
}

func seriesOf(t *testing.T, option map[string]interface{}) []map[string]interface{} {
	list, ok := option["series"].([]interface{})
	if !assert.True(t, ok, "series is not a list") {
		return nil
	}

	series := make([]map[string]interface{}, len(list))
	for i, s := range list {
		series[i] = s.(map[string]interface{})
	}
	return series
}

func seriesNames(t *testing.T, option map[string]interface{}) []string {
	var names []string
	for _, s := range seriesOf(t, option) {
		names = append(names, s["name"].(string))
	}
	return names
}
