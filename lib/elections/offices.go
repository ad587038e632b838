package elections

import "fmt"

// Office is one of the contest types the service indexes. The wire ids
// and cycle lengths are fixed constants of the service's taxonomy.
type Office string

const (
	OfficePresident   Office = "President"
	OfficeUSHouse     Office = "US House"
	OfficeUSSenate    Office = "US Senate"
	OfficeStateRep    Office = "State Rep"
	OfficeStateSenate Office = "State Senate"
	OfficeGovCouncil  Office = "Gov Council"
)

var Offices = []Office{
	OfficePresident,
	OfficeUSHouse,
	OfficeUSSenate,
	OfficeStateRep,
	OfficeStateSenate,
	OfficeGovCouncil,
}

var officeIDs = map[Office]int{
	OfficePresident:   1,
	OfficeUSHouse:     5,
	OfficeUSSenate:    6,
	OfficeStateRep:    8,
	OfficeStateSenate: 9,
	OfficeGovCouncil:  529,
}

// years between regularly scheduled elections for the office
var cycleLengths = map[Office]int{
	OfficePresident:   4,
	OfficeUSHouse:     2,
	OfficeUSSenate:    6,
	OfficeStateRep:    2,
	OfficeStateSenate: 2,
	OfficeGovCouncil:  2,
}

func (o Office) ID() (int, error) {
	id, ok := officeIDs[o]
	if !ok {
		return 0, fmt.Errorf("unknown office %q", string(o))
	}
	return id, nil
}

func (o Office) CycleLength() int {
	return cycleLengths[o]
}

// Stage selects the phase of the election process queried.
type Stage string

const (
	StageGeneral    Stage = "General"
	StagePrimaries  Stage = "Primaries"
	StageDemocratic Stage = "Democratic"
	StageRepublican Stage = "Republican"
)

var Stages = []Stage{
	StageGeneral,
	StagePrimaries,
	StageDemocratic,
	StageRepublican,
}
