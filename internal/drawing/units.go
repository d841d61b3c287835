package drawing

// Unit is the declared drawing unit, mirroring the DXF $INSUNITS table.
type Unit string

const (
	UnitUnitless          Unit = "unitless"
	UnitInches            Unit = "inches"
	UnitFeet              Unit = "feet"
	UnitMiles             Unit = "miles"
	UnitMillimeters       Unit = "millimeters"
	UnitCentimeters       Unit = "centimeters"
	UnitMeters            Unit = "meters"
	UnitKilometers        Unit = "kilometers"
	UnitMicroinches       Unit = "microinches"
	UnitMils              Unit = "mils"
	UnitYards             Unit = "yards"
	UnitAngstroms         Unit = "angstroms"
	UnitNanometers        Unit = "nanometers"
	UnitMicrons           Unit = "microns"
	UnitDecimeters        Unit = "decimeters"
	UnitDecameters        Unit = "decameters"
	UnitHectometers       Unit = "hectometers"
	UnitGigameters        Unit = "gigameters"
	UnitAstronomicalUnits Unit = "astronomicalUnits"
	UnitLightYears        Unit = "lightYears"
	UnitParsecs           Unit = "parsecs"
)

var millimetersPer = map[Unit]float64{
	UnitUnitless:          1,
	UnitInches:            25.4,
	UnitFeet:              304.8,
	UnitMiles:             1_609_344,
	UnitMillimeters:       1,
	UnitCentimeters:       10,
	UnitMeters:            1_000,
	UnitKilometers:        1_000_000,
	UnitMicroinches:       25.4e-6,
	UnitMils:              25.4e-3,
	UnitYards:             914.4,
	UnitAngstroms:         1e-7,
	UnitNanometers:        1e-6,
	UnitMicrons:           1e-3,
	UnitDecimeters:        100,
	UnitDecameters:        10_000,
	UnitHectometers:       100_000,
	UnitGigameters:        1e12,
	UnitAstronomicalUnits: 1.495978707e14,
	UnitLightYears:        9.4607304725808e18,
	UnitParsecs:           3.0856775814913673e19,
}

// Millimeters returns how many millimeters one unit spans. Unknown units
// are treated as millimeters and reported with ok == false.
func (u Unit) Millimeters() (mm float64, ok bool) {
	mm, ok = millimetersPer[u]
	if !ok {
		return 1, false
	}
	return mm, true
}
