package cli

// Version is the arraykit release version reported by --version.
const Version = "0.1.0"
