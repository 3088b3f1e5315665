// Package stockio implements a simulated personal investment portfolio.
// There is no real market behind it: prices come from a bounded random-walk
// generator, and every run starts from the same seed balance and a freshly
// generated market snapshot.
//
// The core functionalities include:
//   - Asset Catalog: immutable reference data for a fixed set of tradable
//     instruments (equities and cryptocurrencies), with wholesale price
//     refreshes published as atomic snapshots.
//   - Price Simulation: a multiplicative random walk producing daily price
//     histories from a seed price, reproducible under an injected random
//     source.
//   - Portfolio Engine: a single mutable aggregate owning the cash balance
//     and current holdings, mutated only through validated, atomic Buy and
//     Sell operations.
//   - Chart Curves: a pure geometry builder that turns a price series into a
//     smoothed stroke path, a gradient fill path, and marker positions, ready
//     for any rendering collaborator.
//
// This package serves as the foundational logic for the `stockio`
// command-line tool; all presentation (markdown, PNG, SVG) lives in the
// renderer and chartimg packages.
package stockio
