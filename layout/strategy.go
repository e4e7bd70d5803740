package layout

// Strategy identifies how a node position was found.
type Strategy int

const (
	// Center is used for node 0 only.
	Center Strategy = iota
	// Ring samples the radius band around the centre.
	Ring
	// Grid derives a cell from the node index.
	Grid
	// Random samples the whole region.
	Random
)

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Center:
		return "center"
	case Ring:
		return "ring"
	case Grid:
		return "grid"
	case Random:
		return "random"
	default:
		return "unknown"
	}
}

// Placements counts placed nodes per strategy.
type Placements struct {
	Center int `yaml:"center"`
	Ring   int `yaml:"ring"`
	Grid   int `yaml:"grid"`
	Random int `yaml:"random"`
}

// Count returns the number of nodes placed by s.
func (p Placements) Count(s Strategy) int {
	switch s {
	case Center:
		return p.Center
	case Ring:
		return p.Ring
	case Grid:
		return p.Grid
	case Random:
		return p.Random
	default:
		return 0
	}
}

func (p *Placements) add(s Strategy) {
	switch s {
	case Center:
		p.Center++
	case Ring:
		p.Ring++
	case Grid:
		p.Grid++
	case Random:
		p.Random++
	}
}
