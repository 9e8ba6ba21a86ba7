package derive

import "github.com/hda-infdl/partner-scout/internal/model"

// ReferenceCoordinate is the fixed anchor for all distance
// computations: Hochschule Darmstadt, Haardtring 100 (approx).
var ReferenceCoordinate = model.Coordinate{Lat: 49.8696, Lon: 8.6366}

type gazetteerEntry struct {
	name  string
	coord model.Coordinate
}

// gazetteer maps normalized city names (lowercase, trimmed,
// diacritics preserved) to manually curated approximate coordinates.
// Focused on Rhein-Main-Neckar, covers nationwide hubs. Kept as an
// ordered slice so substring matching scans in a fixed order and
// stays deterministic. Spelling variants are separate entries mapping
// to the same coordinate; "münster" here is Münster (Hessen), kept
// distinct from "münster (westf)".
var gazetteer = []gazetteerEntry{
	// Rhein-Main / Südhessen core
	{"darmstadt", model.Coordinate{Lat: 49.8728, Lon: 8.6512}},
	{"weiterstadt", model.Coordinate{Lat: 49.8714, Lon: 8.5916}},
	{"griesheim", model.Coordinate{Lat: 49.8580, Lon: 8.5574}},
	{"pfungstadt", model.Coordinate{Lat: 49.8055, Lon: 8.6041}},
	{"mühltal", model.Coordinate{Lat: 49.8333, Lon: 8.7000}},
	{"rossdorf", model.Coordinate{Lat: 49.8583, Lon: 8.7569}},
	{"roßdorf", model.Coordinate{Lat: 49.8583, Lon: 8.7569}},
	{"ober-ramstadt", model.Coordinate{Lat: 49.8294, Lon: 8.7492}},
	{"erzhausen", model.Coordinate{Lat: 49.9500, Lon: 8.6333}},
	{"egelsbach", model.Coordinate{Lat: 49.9667, Lon: 8.6667}},
	{"messel", model.Coordinate{Lat: 49.9333, Lon: 8.7500}},
	{"gross-zimmern", model.Coordinate{Lat: 49.8722, Lon: 8.8333}},
	{"groß-zimmern", model.Coordinate{Lat: 49.8722, Lon: 8.8333}},
	{"dieburg", model.Coordinate{Lat: 49.8984, Lon: 8.8415}},
	{"münster", model.Coordinate{Lat: 49.9167, Lon: 8.8667}},
	{"münster (hessen)", model.Coordinate{Lat: 49.9167, Lon: 8.8667}},
	{"eppertshausen", model.Coordinate{Lat: 49.9458, Lon: 8.8486}},
	{"babenhausen", model.Coordinate{Lat: 49.9636, Lon: 8.9536}},
	{"schaafheim", model.Coordinate{Lat: 49.9167, Lon: 9.0000}},
	{"reinheim", model.Coordinate{Lat: 49.8333, Lon: 8.8333}},
	{"gross-bieberau", model.Coordinate{Lat: 49.8000, Lon: 8.8333}},
	{"groß-bieberau", model.Coordinate{Lat: 49.8000, Lon: 8.8333}},
	{"fischbachtal", model.Coordinate{Lat: 49.7667, Lon: 8.8167}},
	{"seeheim-jugenheim", model.Coordinate{Lat: 49.7667, Lon: 8.6500}},
	{"alsbach-hähnlein", model.Coordinate{Lat: 49.7333, Lon: 8.6000}},
	{"bickenbach", model.Coordinate{Lat: 49.7500, Lon: 8.6167}},
	{"zwingenberg", model.Coordinate{Lat: 49.7225, Lon: 8.6133}},
	{"bensheim", model.Coordinate{Lat: 49.6815, Lon: 8.6190}},
	{"heppenheim", model.Coordinate{Lat: 49.6417, Lon: 8.6432}},
	{"lorsch", model.Coordinate{Lat: 49.6500, Lon: 8.5667}},
	{"einhausen", model.Coordinate{Lat: 49.6667, Lon: 8.5500}},
	{"bürstadt", model.Coordinate{Lat: 49.6500, Lon: 8.4500}},
	{"biblis", model.Coordinate{Lat: 49.6833, Lon: 8.4500}},
	{"gross-rohrheim", model.Coordinate{Lat: 49.7167, Lon: 8.4833}},
	{"groß-rohrheim", model.Coordinate{Lat: 49.7167, Lon: 8.4833}},
	{"gernsheim", model.Coordinate{Lat: 49.7500, Lon: 8.4833}},
	{"biebesheim", model.Coordinate{Lat: 49.7833, Lon: 8.4667}},
	{"stockstadt", model.Coordinate{Lat: 49.8167, Lon: 8.4667}},
	{"riedstadt", model.Coordinate{Lat: 49.8333, Lon: 8.5000}},
	{"gross-gerau", model.Coordinate{Lat: 49.9229, Lon: 8.4830}},
	{"groß-gerau", model.Coordinate{Lat: 49.9229, Lon: 8.4830}},
	{"büttelborn", model.Coordinate{Lat: 49.9000, Lon: 8.5167}},
	{"nauheim", model.Coordinate{Lat: 49.9500, Lon: 8.4500}},
	{"trebur", model.Coordinate{Lat: 49.9167, Lon: 8.4167}},
	{"rüsselsheim", model.Coordinate{Lat: 49.9961, Lon: 8.4137}},
	{"rüsselsheim am main", model.Coordinate{Lat: 49.9961, Lon: 8.4137}},
	{"raunheim", model.Coordinate{Lat: 50.0167, Lon: 8.4500}},
	{"kelsterbach", model.Coordinate{Lat: 50.0716, Lon: 8.5348}},
	{"mörfelden-walldorf", model.Coordinate{Lat: 49.9922, Lon: 8.5684}},
	{"langen", model.Coordinate{Lat: 49.9904, Lon: 8.6687}},
	{"dreieich", model.Coordinate{Lat: 50.0163, Lon: 8.6974}},
	{"neu-isenburg", model.Coordinate{Lat: 50.0536, Lon: 8.6946}},
	{"dietzenbach", model.Coordinate{Lat: 50.0084, Lon: 8.7753}},
	{"rödermark", model.Coordinate{Lat: 49.9667, Lon: 8.8167}},
	{"rodgau", model.Coordinate{Lat: 50.0249, Lon: 8.8795}},
	{"hainburg", model.Coordinate{Lat: 50.0833, Lon: 8.9667}},
	{"seligenstadt", model.Coordinate{Lat: 50.0435, Lon: 8.9757}},
	{"mainhausen", model.Coordinate{Lat: 50.0167, Lon: 9.0167}},
	{"offenbach", model.Coordinate{Lat: 50.1006, Lon: 8.7667}},
	{"offenbach am main", model.Coordinate{Lat: 50.1006, Lon: 8.7667}},
	{"mühlheim", model.Coordinate{Lat: 50.1167, Lon: 8.8333}},
	{"mühlheim am main", model.Coordinate{Lat: 50.1167, Lon: 8.8333}},
	{"obertshausen", model.Coordinate{Lat: 50.0667, Lon: 8.8500}},
	{"heusenstamm", model.Coordinate{Lat: 50.0500, Lon: 8.8000}},
	{"hanau", model.Coordinate{Lat: 50.1327, Lon: 8.9169}},
	{"bruchköbel", model.Coordinate{Lat: 50.1833, Lon: 8.9167}},
	{"erlensee", model.Coordinate{Lat: 50.1667, Lon: 8.9833}},
	{"maintal", model.Coordinate{Lat: 50.1500, Lon: 8.8333}},
	{"frankfurt", model.Coordinate{Lat: 50.1109, Lon: 8.6821}},
	{"frankfurt am main", model.Coordinate{Lat: 50.1109, Lon: 8.6821}},
	{"eschborn", model.Coordinate{Lat: 50.1417, Lon: 8.5681}},
	{"schwalbach", model.Coordinate{Lat: 50.1500, Lon: 8.5333}},
	{"schwalbach am taunus", model.Coordinate{Lat: 50.1500, Lon: 8.5333}},
	{"sulzbach", model.Coordinate{Lat: 50.1333, Lon: 8.5167}},
	{"bad soden", model.Coordinate{Lat: 50.1433, Lon: 8.5000}},
	{"bad soden am taunus", model.Coordinate{Lat: 50.1433, Lon: 8.5000}},
	{"kelkheim", model.Coordinate{Lat: 50.1333, Lon: 8.4500}},
	{"hofheim", model.Coordinate{Lat: 50.0864, Lon: 8.4485}},
	{"hofheim am taunus", model.Coordinate{Lat: 50.0864, Lon: 8.4485}},
	{"kriftel", model.Coordinate{Lat: 50.0833, Lon: 8.4667}},
	{"hattersheim", model.Coordinate{Lat: 50.0667, Lon: 8.4833}},
	{"flörsheim", model.Coordinate{Lat: 50.0167, Lon: 8.4333}},
	{"hochheim", model.Coordinate{Lat: 50.0167, Lon: 8.3500}},
	{"wiesbaden", model.Coordinate{Lat: 50.0782, Lon: 8.2398}},
	{"mainz", model.Coordinate{Lat: 49.9929, Lon: 8.2473}},
	{"oberursel", model.Coordinate{Lat: 50.2017, Lon: 8.5770}},
	{"bad homburg", model.Coordinate{Lat: 50.2291, Lon: 8.6111}},
	{"bad homburg v. d. höhe", model.Coordinate{Lat: 50.2291, Lon: 8.6111}},
	{"friedrichsdorf", model.Coordinate{Lat: 50.2667, Lon: 8.6333}},
	{"steinbach", model.Coordinate{Lat: 50.1667, Lon: 8.5667}},
	{"kronberg", model.Coordinate{Lat: 50.1833, Lon: 8.5167}},
	{"königstein", model.Coordinate{Lat: 50.1833, Lon: 8.4667}},
	{"bad vilbel", model.Coordinate{Lat: 50.1837, Lon: 8.7454}},
	{"karben", model.Coordinate{Lat: 50.2333, Lon: 8.7667}},
	{"bad nauheim", model.Coordinate{Lat: 50.3662, Lon: 8.7397}},
	{"friedberg", model.Coordinate{Lat: 50.3347, Lon: 8.7538}},
	{"butzbach", model.Coordinate{Lat: 50.4333, Lon: 8.6667}},
	{"giessen", model.Coordinate{Lat: 50.5841, Lon: 8.6784}},
	{"gießen", model.Coordinate{Lat: 50.5841, Lon: 8.6784}},
	{"wetzlar", model.Coordinate{Lat: 50.5516, Lon: 8.5034}},
	{"marburg", model.Coordinate{Lat: 50.8022, Lon: 8.7709}},
	{"limbburg", model.Coordinate{Lat: 50.3833, Lon: 8.0500}},
	{"limburg an der lahn", model.Coordinate{Lat: 50.3833, Lon: 8.0500}},
	{"montabaur", model.Coordinate{Lat: 50.4333, Lon: 7.8333}},
	{"koblenz", model.Coordinate{Lat: 50.3569, Lon: 7.5938}},
	{"aschaffenburg", model.Coordinate{Lat: 49.9742, Lon: 9.1478}},
	{"michelstadt", model.Coordinate{Lat: 49.6780, Lon: 9.0064}},
	{"erbach", model.Coordinate{Lat: 49.6575, Lon: 8.9917}},
	{"bad könig", model.Coordinate{Lat: 49.7500, Lon: 9.0167}},
	{"höchst", model.Coordinate{Lat: 49.8000, Lon: 8.9833}},
	{"breuberg", model.Coordinate{Lat: 49.8167, Lon: 9.0333}},
	{"weinheim", model.Coordinate{Lat: 49.5552, Lon: 8.6669}},
	{"viernheim", model.Coordinate{Lat: 49.5379, Lon: 8.5786}},
	{"lampertheim", model.Coordinate{Lat: 49.5937, Lon: 8.4682}},
	{"mannheim", model.Coordinate{Lat: 49.4875, Lon: 8.4660}},
	{"heidelberg", model.Coordinate{Lat: 49.3988, Lon: 8.6724}},
	{"ludwigshafen", model.Coordinate{Lat: 49.4774, Lon: 8.4452}},
	{"speyer", model.Coordinate{Lat: 49.3175, Lon: 8.4322}},
	{"worms", model.Coordinate{Lat: 49.6356, Lon: 8.3561}},
	{"kaiserslautern", model.Coordinate{Lat: 49.4447, Lon: 7.7689}},
	{"karlsruhe", model.Coordinate{Lat: 49.0069, Lon: 8.4037}},
	{"bruchsal", model.Coordinate{Lat: 49.1231, Lon: 8.5978}},
	{"walldorf", model.Coordinate{Lat: 49.3082, Lon: 8.6425}},
	{"sinsheim", model.Coordinate{Lat: 49.2522, Lon: 8.8778}},
	{"heilbronn", model.Coordinate{Lat: 49.1427, Lon: 9.2109}},
	{"neckarsulm", model.Coordinate{Lat: 49.1917, Lon: 9.2231}},
	{"stuttgart", model.Coordinate{Lat: 48.7758, Lon: 9.1829}},
	{"ludwigsburg", model.Coordinate{Lat: 48.8975, Lon: 9.1919}},
	{"esslingen", model.Coordinate{Lat: 48.7406, Lon: 9.3114}},
	{"böblingen", model.Coordinate{Lat: 48.6833, Lon: 9.0167}},
	{"sindelfingen", model.Coordinate{Lat: 48.7075, Lon: 9.0044}},
	{"reutlingen", model.Coordinate{Lat: 48.4914, Lon: 9.2043}},
	{"tübingen", model.Coordinate{Lat: 48.5216, Lon: 9.0576}},
	{"ulm", model.Coordinate{Lat: 48.4011, Lon: 9.9876}},
	{"neu-ulm", model.Coordinate{Lat: 48.3978, Lon: 10.0053}},
	{"freiburg", model.Coordinate{Lat: 47.9990, Lon: 7.8421}},

	// Rest of Germany
	{"berlin", model.Coordinate{Lat: 52.5200, Lon: 13.4050}},
	{"hamburg", model.Coordinate{Lat: 53.5511, Lon: 9.9937}},
	{"münchen", model.Coordinate{Lat: 48.1351, Lon: 11.5820}},
	{"munich", model.Coordinate{Lat: 48.1351, Lon: 11.5820}},
	{"unterföhring", model.Coordinate{Lat: 48.1931, Lon: 11.6494}},
	{"ismaning", model.Coordinate{Lat: 48.2267, Lon: 11.6739}},
	{"garching", model.Coordinate{Lat: 48.2492, Lon: 11.6525}},
	{"köln", model.Coordinate{Lat: 50.9375, Lon: 6.9603}},
	{"cologne", model.Coordinate{Lat: 50.9375, Lon: 6.9603}},
	{"düsseldorf", model.Coordinate{Lat: 51.2277, Lon: 6.7735}},
	{"essen", model.Coordinate{Lat: 51.4556, Lon: 7.0116}},
	{"dortmund", model.Coordinate{Lat: 51.5136, Lon: 7.4653}},
	{"leipzig", model.Coordinate{Lat: 51.3397, Lon: 12.3731}},
	{"bremen", model.Coordinate{Lat: 53.0793, Lon: 8.8017}},
	{"dresden", model.Coordinate{Lat: 51.0504, Lon: 13.7373}},
	{"hannover", model.Coordinate{Lat: 52.3759, Lon: 9.7320}},
	{"nürnberg", model.Coordinate{Lat: 49.4521, Lon: 11.0767}},
	{"erlangen", model.Coordinate{Lat: 49.6012, Lon: 11.0231}},
	{"fürth", model.Coordinate{Lat: 49.4761, Lon: 10.9903}},
	{"duisburg", model.Coordinate{Lat: 51.4344, Lon: 6.7623}},
	{"bochum", model.Coordinate{Lat: 51.4818, Lon: 7.2162}},
	{"wuppertal", model.Coordinate{Lat: 51.2562, Lon: 7.1508}},
	{"bielefeld", model.Coordinate{Lat: 52.0302, Lon: 8.5325}},
	{"bonn", model.Coordinate{Lat: 50.7374, Lon: 7.0982}},
	{"münster (westf)", model.Coordinate{Lat: 51.9607, Lon: 7.6261}},
	{"augsburg", model.Coordinate{Lat: 48.3705, Lon: 10.8978}},
	{"gelsenkirchen", model.Coordinate{Lat: 51.5177, Lon: 7.0857}},
	{"mönchengladbach", model.Coordinate{Lat: 51.1854, Lon: 6.4417}},
	{"braunschweig", model.Coordinate{Lat: 52.2689, Lon: 10.5268}},
	{"chemnitz", model.Coordinate{Lat: 50.8278, Lon: 12.9214}},
	{"kiel", model.Coordinate{Lat: 54.3233, Lon: 10.1228}},
	{"aachen", model.Coordinate{Lat: 50.7753, Lon: 6.0839}},
	{"halle", model.Coordinate{Lat: 51.4828, Lon: 11.9646}},
	{"halle (saale)", model.Coordinate{Lat: 51.4828, Lon: 11.9646}},
	{"magdeburg", model.Coordinate{Lat: 52.1205, Lon: 11.6276}},
	{"freiburg im breisgau", model.Coordinate{Lat: 47.9990, Lon: 7.8421}},
	{"krefeld", model.Coordinate{Lat: 51.3383, Lon: 6.5629}},
	{"lübeck", model.Coordinate{Lat: 53.8655, Lon: 10.6866}},
	{"erfurt", model.Coordinate{Lat: 50.9848, Lon: 11.0299}},
	{"oberhausen", model.Coordinate{Lat: 51.4700, Lon: 6.8710}},
	{"rostock", model.Coordinate{Lat: 54.0924, Lon: 12.0991}},
	{"kassel", model.Coordinate{Lat: 51.3127, Lon: 9.4797}},
	{"hagen", model.Coordinate{Lat: 51.3671, Lon: 7.4633}},
	{"hamm", model.Coordinate{Lat: 51.6811, Lon: 7.8194}},
	{"saarbrücken", model.Coordinate{Lat: 49.2402, Lon: 6.9969}},
	{"mülheim", model.Coordinate{Lat: 51.4291, Lon: 6.8807}},
	{"potsdam", model.Coordinate{Lat: 52.3906, Lon: 13.0645}},
	{"ludwigshafen am rhein", model.Coordinate{Lat: 49.4774, Lon: 8.4452}},
	{"oldenburg", model.Coordinate{Lat: 53.1435, Lon: 8.2146}},
	{"leverkusen", model.Coordinate{Lat: 51.0459, Lon: 7.0001}},
	{"osnabrück", model.Coordinate{Lat: 52.2799, Lon: 8.0472}},
	{"solingen", model.Coordinate{Lat: 51.1714, Lon: 7.0847}},
	{"herne", model.Coordinate{Lat: 51.5426, Lon: 7.2190}},
	{"neuss", model.Coordinate{Lat: 51.1983, Lon: 6.6917}},
	{"regensburg", model.Coordinate{Lat: 49.0134, Lon: 12.1016}},
	{"paderborn", model.Coordinate{Lat: 51.7189, Lon: 8.7575}},
	{"ingolstadt", model.Coordinate{Lat: 48.7665, Lon: 11.4258}},
	{"würzburg", model.Coordinate{Lat: 49.7913, Lon: 9.9534}},
	{"wolfsburg", model.Coordinate{Lat: 52.4227, Lon: 10.7865}},
	{"pforzheim", model.Coordinate{Lat: 48.8906, Lon: 8.7029}},
	{"göttingen", model.Coordinate{Lat: 51.5413, Lon: 9.9158}},
	{"bottrop", model.Coordinate{Lat: 51.5233, Lon: 6.9425}},
	{"trier", model.Coordinate{Lat: 49.7499, Lon: 6.6371}},
	{"recklinghausen", model.Coordinate{Lat: 51.6144, Lon: 7.1981}},
	{"bremerhaven", model.Coordinate{Lat: 53.5396, Lon: 8.5809}},
	{"bergisch gladbach", model.Coordinate{Lat: 50.9928, Lon: 7.1378}},
	{"jena", model.Coordinate{Lat: 50.9271, Lon: 11.5892}},
	{"remscheid", model.Coordinate{Lat: 51.1794, Lon: 7.1894}},
	{"salzgitter", model.Coordinate{Lat: 52.1500, Lon: 10.3333}},
	{"moers", model.Coordinate{Lat: 51.4508, Lon: 6.6267}},
	{"siegen", model.Coordinate{Lat: 50.8744, Lon: 8.0169}},
	{"hildesheim", model.Coordinate{Lat: 52.1508, Lon: 9.9511}},
	{"cottbus", model.Coordinate{Lat: 51.7563, Lon: 14.3329}},
	{"gütersloh", model.Coordinate{Lat: 51.9061, Lon: 8.3783}},
}

// gazetteerIndex backs direct (exact) lookups.
var gazetteerIndex = func() map[string]model.Coordinate {
	idx := make(map[string]model.Coordinate, len(gazetteer))
	for _, e := range gazetteer {
		idx[e.name] = e.coord
	}
	return idx
}()
