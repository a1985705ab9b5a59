package outdoor

import (
	"testing"
	"time"

	"github.com/ThanyaBream/IAQexceedance/internal/models"
)

func testFeed(maxAge time.Duration) *Feed {
	return &Feed{
		config: FeedConfig{MaxAge: maxAge},
		latest: make(map[Quantity]Reading),
	}
}

func TestSnapshotLatestReading(t *testing.T) {
	feed := testFeed(time.Hour)

	feed.record(QuantityTemperature, Reading{Timestamp: time.Now().Add(-time.Minute), Value: 27.5})
	feed.record(QuantityTemperature, Reading{Timestamp: time.Now(), Value: 31.2})
	feed.record(QuantityPM25, Reading{Timestamp: time.Now(), Value: 12.0})

	c := feed.Snapshot()
	if c.Temperature == nil || c.Temperature.Value != 31.2 {
		t.Fatalf("snapshot temperature = %+v, want latest 31.2", c.Temperature)
	}
	if c.PM25 == nil || c.PM25.Value != 12.0 {
		t.Fatalf("snapshot pm25 = %+v, want 12.0", c.PM25)
	}
	if c.Humidity != nil {
		t.Fatalf("snapshot humidity = %+v, want none", c.Humidity)
	}
}

func TestSnapshotDropsStaleReadings(t *testing.T) {
	feed := testFeed(10 * time.Minute)

	feed.record(QuantityHumidity, Reading{Timestamp: time.Now().Add(-time.Hour), Value: 80})

	if c := feed.Snapshot(); c.Humidity != nil {
		t.Fatalf("stale humidity reading survived: %+v", c.Humidity)
	}
}

func TestConditionsBands(t *testing.T) {
	feed := testFeed(time.Hour)
	feed.record(QuantityTemperature, Reading{Timestamp: time.Now(), Value: 31.2})
	feed.record(QuantityPM25, Reading{Timestamp: time.Now(), Value: 12.0})
	feed.record(QuantityHumidity, Reading{Timestamp: time.Now(), Value: 74.0})

	c := feed.Snapshot()

	if band, ok := c.TemperatureBand(); !ok || band != models.BandAboveLimit {
		t.Errorf("temperature band = %q ok=%v, want above_limit", band, ok)
	}
	if band, ok := c.PM25Band(); !ok || band != models.BandAtOrBelowLimit {
		t.Errorf("pm25 band = %q ok=%v, want at_or_below_limit", band, ok)
	}
	if band, ok := c.HumidityBand(); !ok || band != models.BandAboveLimit {
		t.Errorf("humidity band = %q ok=%v, want above_limit", band, ok)
	}
}

func TestConditionsBandsWithoutReadings(t *testing.T) {
	c := testFeed(time.Hour).Snapshot()
	if _, ok := c.TemperatureBand(); ok {
		t.Error("temperature band reported without a reading")
	}
	if _, ok := c.PM25Band(); ok {
		t.Error("pm25 band reported without a reading")
	}
	if _, ok := c.HumidityBand(); ok {
		t.Error("humidity band reported without a reading")
	}
}
