package arenas

import "github.com/danicode12/stat139-nhl-project/internal/geo"

// defaultEntries holds home arena coordinates for the 32 NHL franchises.
// Coordinates sourced from Wikipedia arena articles.
var defaultEntries = map[string]Entry{
	"ANA": {Name: "Anaheim Ducks", Arena: "Honda Center", Coordinates: geo.Coordinates{Lat: 33.8078, Lon: -117.8765}},
	"ARI": {Name: "Arizona Coyotes", Arena: "Mullett Arena", Coordinates: geo.Coordinates{Lat: 33.4255, Lon: -111.9325}},
	"BOS": {Name: "Boston Bruins", Arena: "TD Garden", Coordinates: geo.Coordinates{Lat: 42.3662, Lon: -71.0621}},
	"BUF": {Name: "Buffalo Sabres", Arena: "KeyBank Center", Coordinates: geo.Coordinates{Lat: 42.8750, Lon: -78.8764}},
	"CGY": {Name: "Calgary Flames", Arena: "Scotiabank Saddledome", Coordinates: geo.Coordinates{Lat: 51.0374, Lon: -114.0519}},
	"CAR": {Name: "Carolina Hurricanes", Arena: "PNC Arena", Coordinates: geo.Coordinates{Lat: 35.8033, Lon: -78.7220}},
	"CHI": {Name: "Chicago Blackhawks", Arena: "United Center", Coordinates: geo.Coordinates{Lat: 41.8807, Lon: -87.6742}},
	"COL": {Name: "Colorado Avalanche", Arena: "Ball Arena", Coordinates: geo.Coordinates{Lat: 39.7487, Lon: -105.0077}},
	"CBJ": {Name: "Columbus Blue Jackets", Arena: "Nationwide Arena", Coordinates: geo.Coordinates{Lat: 39.9692, Lon: -83.0060}},
	"DAL": {Name: "Dallas Stars", Arena: "American Airlines Center", Coordinates: geo.Coordinates{Lat: 32.7905, Lon: -96.8103}},
	"DET": {Name: "Detroit Red Wings", Arena: "Little Caesars Arena", Coordinates: geo.Coordinates{Lat: 42.3411, Lon: -83.0553}},
	"EDM": {Name: "Edmonton Oilers", Arena: "Rogers Place", Coordinates: geo.Coordinates{Lat: 53.5469, Lon: -113.4979}},
	"FLA": {Name: "Florida Panthers", Arena: "FLA Live Arena", Coordinates: geo.Coordinates{Lat: 26.1584, Lon: -80.3256}},
	"LAK": {Name: "Los Angeles Kings", Arena: "Crypto.com Arena", Coordinates: geo.Coordinates{Lat: 34.0430, Lon: -118.2673}},
	"MIN": {Name: "Minnesota Wild", Arena: "Xcel Energy Center", Coordinates: geo.Coordinates{Lat: 44.9448, Lon: -93.1019}},
	"MTL": {Name: "Montreal Canadiens", Arena: "Bell Centre", Coordinates: geo.Coordinates{Lat: 45.4961, Lon: -73.5693}},
	"NSH": {Name: "Nashville Predators", Arena: "Bridgestone Arena", Coordinates: geo.Coordinates{Lat: 36.1592, Lon: -86.7785}},
	"NJD": {Name: "New Jersey Devils", Arena: "Prudential Center", Coordinates: geo.Coordinates{Lat: 40.7334, Lon: -74.1712}},
	"NYI": {Name: "New York Islanders", Arena: "UBS Arena", Coordinates: geo.Coordinates{Lat: 40.7172, Lon: -73.7246}},
	"NYR": {Name: "New York Rangers", Arena: "Madison Square Garden", Coordinates: geo.Coordinates{Lat: 40.7505, Lon: -73.9934}},
	"OTT": {Name: "Ottawa Senators", Arena: "Canadian Tire Centre", Coordinates: geo.Coordinates{Lat: 45.2969, Lon: -75.9269}},
	"PHI": {Name: "Philadelphia Flyers", Arena: "Wells Fargo Center", Coordinates: geo.Coordinates{Lat: 39.9012, Lon: -75.1720}},
	"PIT": {Name: "Pittsburgh Penguins", Arena: "PPG Paints Arena", Coordinates: geo.Coordinates{Lat: 40.4395, Lon: -79.9892}},
	"SJS": {Name: "San Jose Sharks", Arena: "SAP Center", Coordinates: geo.Coordinates{Lat: 37.3327, Lon: -121.9012}},
	"SEA": {Name: "Seattle Kraken", Arena: "Climate Pledge Arena", Coordinates: geo.Coordinates{Lat: 47.6221, Lon: -122.3540}},
	"STL": {Name: "St. Louis Blues", Arena: "Enterprise Center", Coordinates: geo.Coordinates{Lat: 38.6268, Lon: -90.2025}},
	"TBL": {Name: "Tampa Bay Lightning", Arena: "Amalie Arena", Coordinates: geo.Coordinates{Lat: 27.9427, Lon: -82.4521}},
	"TOR": {Name: "Toronto Maple Leafs", Arena: "Scotiabank Arena", Coordinates: geo.Coordinates{Lat: 43.6435, Lon: -79.3791}},
	"VAN": {Name: "Vancouver Canucks", Arena: "Rogers Arena", Coordinates: geo.Coordinates{Lat: 49.2778, Lon: -123.1089}},
	"VGK": {Name: "Vegas Golden Knights", Arena: "T-Mobile Arena", Coordinates: geo.Coordinates{Lat: 36.1030, Lon: -115.1784}},
	"WSH": {Name: "Washington Capitals", Arena: "Capital One Arena", Coordinates: geo.Coordinates{Lat: 38.8981, Lon: -77.0212}},
	"WPG": {Name: "Winnipeg Jets", Arena: "Canada Life Centre", Coordinates: geo.Coordinates{Lat: 49.8928, Lon: -97.1437}},
}
