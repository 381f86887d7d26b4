// Package backend provides the VSXchangeZA API server.

// This module contains the application entry points under cmd/ and the
// implementation packages under internal/:

// - internal/handlers: HTTP request handlers for all API endpoints
// - internal/models: Data models and database schemas
// - internal/auth: Password and token authentication
// - internal/storage: Media storage (local disk and S3)
// - internal/database: Database connection and migrations
// - internal/middleware: HTTP middleware (request ids, logging, metrics)
// - internal/metrics: Prometheus metrics
// - internal/telemetry: OpenTelemetry tracing
// - internal/seed: Development and test data seeding

// See the individual package documentation for detailed API reference.
package backend
