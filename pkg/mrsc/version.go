package mrsc

// Version identifies this package's revision of the staged-mrsc kernel.
const Version = "0.1.0"
