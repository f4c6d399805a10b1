// Package middleware groups the Fiber middleware registered in front of the
// feature routes.
//
//   - auth: rejects requests without the configured API key, read from the
//     X-API-Key header or the api_key query parameter. An empty key disables it.
//   - rayid: tags each request with an X-Ray-ID (reusing one sent by the client)
//     so logger.WithRayID can correlate log lines.
//
// rayid is registered first, then request logging, then auth.
package middleware
