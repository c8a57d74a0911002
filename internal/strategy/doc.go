// Package strategy implements the interchangeable sentiment scoring
// strategies. Every strategy returns scores on the canonical [0,1] scale
// (0 = most negative, 1 = most positive, 0.5 = neutral), regardless of its
// native output range.
package strategy
