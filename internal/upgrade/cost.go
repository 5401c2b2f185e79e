package upgrade

import (
	"math"

	"github.com/hexplot/mergefarm/internal/utils"
)

// seedQualityStageCosts prices seed_quality by stage rather than by the
// usual geometric law: stage = level/10, and purchases within a stage all
// cost the same. Levels past the table clamp to the last entry.
var seedQualityStageCosts = []int{150, 600, 2400, 9600, 38400, 153600}

// Cost returns the price of buying the next level of an upgrade given its
// current level. Standard upgrades follow cost = round5(base * growth^level);
// seed_quality uses the stage table. Unknown ids cost 0.
func Cost(id string, level int) int {
	def, ok := definitions[id]
	if !ok {
		return 0
	}
	if id == KeySeedQuality {
		stage := level / seedQualityStageSpan
		if stage >= len(seedQualityStageCosts) {
			stage = len(seedQualityStageCosts) - 1
		}
		return utils.RoundToNearest5(float64(seedQualityStageCosts[stage]))
	}
	return utils.RoundToNearest5(float64(def.BaseCost) * math.Pow(def.Growth, float64(level)))
}
