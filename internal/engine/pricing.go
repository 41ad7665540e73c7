package engine

import (
	"math"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

// Price draws the three cabin fares for a route. Fares are strictly
// increasing from economy to first.
func Price(distanceKm float64, domestic bool, rng Rand) domain.Prices {
	if domestic {
		economy := 500 + rng.IntN(1001)
		business := round(float64(economy) * uniform(rng, 2.5, 3.5))
		return domain.Prices{
			Economy:  economy,
			Business: business,
			First:    round(float64(business) * 1.5),
		}
	}

	base := float64(1000 + rng.IntN(1001))
	economy := round(base * (1 + distanceKm/2000))
	business := round(float64(economy) * uniform(rng, 3.5, 5.0))
	return domain.Prices{
		Economy:  economy,
		Business: business,
		First:    round(float64(business) * uniform(rng, 2.0, 3.0)),
	}
}

func round(f float64) int { return int(math.Round(f)) }
