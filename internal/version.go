package internal

// Version is the current hadithtrans release version.
const Version = "0.1.0"
