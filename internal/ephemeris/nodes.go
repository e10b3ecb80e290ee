package ephemeris

// NodeSpeed is the mean daily motion of the lunar nodes (retrograde).
const NodeSpeed = -0.0529538

// meanNode returns the longitude of the mean ascending lunar node
// (Meeus 47.7).
func meanNode(t float64) float64 {
	return Normalize(125.04452 - 1934.136261*t + 0.0020708*t*t + t*t*t/450000)
}

// nodes returns the mean North Node and the South Node opposite it. Both
// lie on the ecliptic.
func nodes(t float64) (Position, Position) {
	north := meanNode(t)
	return Position{
			Body:      NorthNode,
			Longitude: north,
			Speed:     NodeSpeed,
		}, Position{
			Body:      SouthNode,
			Longitude: Normalize(north + 180),
			Speed:     NodeSpeed,
		}
}
