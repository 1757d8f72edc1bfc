package registry

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/level"
)

// DefaultLayout is the layout used when a game starts without an explicit level.
const DefaultLayout = "default"

func init() {
	Register(DefaultLayout, "Default", func() level.Level {
		return level.Level{
			PlayerInitialPos: core.V(0, 0),
			Blocks: []core.Recti{
				core.NewRect(0, 800, 1600, 1600),
				core.NewRect(1200, 500, 100, 100),
				core.NewRect(300, 700, 100, 100),
			},
		}
	})

	Register("flat", "Flat Ground", func() level.Level {
		return level.Level{
			PlayerInitialPos: core.V(64, 0),
			Blocks: []core.Recti{
				core.NewRect(-3200, 800, 6400, 640),
			},
		}
	})

	Register("stairs", "Stairs", func() level.Level {
		const step = 128
		blocks := []core.Recti{core.NewRect(0, 800, 3200, 640)}
		for i := 1; i <= 6; i++ {
			x := 400 + i*2*step
			blocks = append(blocks, core.NewRect(x, 800-i*step/2, 2*step, i*step/2))
		}
		return level.Level{PlayerInitialPos: core.V(64, 0), Blocks: blocks}
	})
}
