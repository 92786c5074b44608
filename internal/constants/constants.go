package constants

import "time"

var CacheTTL = struct {
	Report time.Duration
}{
	Report: 5 * time.Minute,
}

var StringLimits = struct {
	BrandName    int
	SourceDomain int
	EntityName   int
}{
	BrandName:    40,
	SourceDomain: 32,
	EntityName:   28,
}

var APIConfig = struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}{
	RequestTimeout:  10 * time.Second,
	ShutdownTimeout: 10 * time.Second,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
}{
	ReadyTimeout: 5 * time.Second,
}

var ReportConfig = struct {
	FetchConcurrency int
}{
	FetchConcurrency: 6,
}
