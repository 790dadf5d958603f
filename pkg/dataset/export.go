package dataset

import (
	"io"
	"strconv"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteCommutes exports a commute table in the same column layout it loads from.
func WriteCommutes(w io.Writer, t *CommuteTable) error {
	rows := make([][]string, 0, t.Len())
	for _, r := range t.Records() {
		rows = append(rows, []string{
			r.CompanyID,
			string(r.Mode),
			formatFloat(r.DistanceKM),
			formatFloat(r.EmissionKG),
			formatFloat(r.Sentiment),
			strconv.FormatBool(r.FlexEligible),
		})
	}
	return WriteFrame(w, CommuteColumns, rows)
}

// WriteTraffic exports traffic samples.
func WriteTraffic(w io.Writer, samples []TrafficSample) error {
	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{
			s.Time,
			formatFloat(s.VehiclesPerHour),
			formatFloat(s.CommuteTimeMin10KM),
			formatFloat(s.CongestionIndex),
		})
	}
	return WriteFrame(w, TrafficColumns, rows)
}

// WriteCompanies exports company rows. The sector column is written when any
// company has one.
func WriteCompanies(w io.Writer, companies []Company) error {
	withSector := false
	for _, c := range companies {
		withSector = withSector || c.Sector != ""
	}

	header := CompanyColumns
	if withSector {
		header = append(append([]string{}, CompanyColumns...), SectorColumn)
	}
	rows := make([][]string, 0, len(companies))
	for _, c := range companies {
		row := []string{c.Name, strconv.Itoa(c.Employees)}
		if withSector {
			row = append(row, c.Sector)
		}
		rows = append(rows, row)
	}
	return WriteFrame(w, header, rows)
}

// WriteSurvey exports survey answers, leading with the respondent id and
// company columns when any response carries them.
func WriteSurvey(w io.Writer, responses []SurveyResponse) error {
	withID, withCompany := false, false
	for _, r := range responses {
		withID = withID || r.RespondentID != ""
		withCompany = withCompany || r.CompanyName != ""
	}

	var header []string
	if withID {
		header = append(header, RespondentIDColumn)
	}
	if withCompany {
		header = append(header, SurveyCompanyColumn)
	}
	header = append(header, SurveyColumns...)

	rows := make([][]string, 0, len(responses))
	for _, r := range responses {
		var row []string
		if withID {
			row = append(row, r.RespondentID)
		}
		if withCompany {
			row = append(row, r.CompanyName)
		}
		rows = append(rows, append(row, r.WillingToShift, r.PreferredSlot, r.IncentivePreference))
	}
	return WriteFrame(w, header, rows)
}

// WriteEmissions exports emission estimate rows.
func WriteEmissions(w io.Writer, estimates []EmissionEstimate) error {
	rows := make([][]string, 0, len(estimates))
	for _, e := range estimates {
		rows = append(rows, []string{e.Metric, formatFloat(e.Value), e.Unit})
	}
	return WriteFrame(w, EmissionsColumns, rows)
}
