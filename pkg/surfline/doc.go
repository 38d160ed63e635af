// Package surfline implements queries to Surfline's kbyg API to retrieve
// 17-day spot forecasts. Each forecast kind (wave, wind, tides, weather) is
// requested separately per spot and returns a time series of samples plus an
// associated block of static location metadata. Timestamps are UTC seconds;
// tides are sampled hourly so high/low events are visible, the other kinds
// every third hour.
package surfline
