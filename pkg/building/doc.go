// Package building defines the input model of a stacked building: levels
// (frustum segments stacked bottom to top) and the rings derived from them.
package building
