// Package logger wraps zap with a console encoder, a global sugared logger,
// context helpers (ToContext/FromContext/WithName) and level parsing.
//
// Installation steps accept a context and log through it, so the whole
// pipeline shares one named, leveled logger.
package logger
