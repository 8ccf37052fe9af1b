package tscrunch

// Version is the cruncher's reported version string, surfaced by the CLI
// usage banners.
const Version = "1.3.1-go"
