package version

// Version is overridden at build time with -ldflags "-X oligoseq/internal/version.Version=...".
var Version = "dev"
