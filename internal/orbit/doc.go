// Package orbit implements two-body Keplerian orbital mechanics for the
// simulator: inverting Kepler's equation, converting orbital elements to
// positions and velocities, and generating static orbit geometry.
//
// All functions are pure and allocation-light; the position path is called
// once per planet per animation frame, so the Kepler solve runs with a
// fixed iteration cap rather than iterating to convergence.
//
// Units: distances in AU, angles in radians unless a parameter name says
// degrees, time in days, velocities in km/s.
package orbit
