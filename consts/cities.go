package consts

// USMajorCities - curated major cities per state, used by the city text
// search discovery strategy.
var USMajorCities = map[string][]string{
	"AL": {"Birmingham", "Montgomery", "Huntsville", "Mobile"},
	"AK": {"Anchorage", "Fairbanks", "Juneau"},
	"AZ": {"Phoenix", "Tucson", "Mesa", "Scottsdale"},
	"AR": {"Little Rock", "Fayetteville", "Fort Smith"},
	"CA": {"Los Angeles", "San Diego", "San Jose", "San Francisco", "Sacramento", "Fresno"},
	"CO": {"Denver", "Colorado Springs", "Aurora", "Fort Collins"},
	"CT": {"Bridgeport", "New Haven", "Hartford", "Stamford"},
	"DE": {"Wilmington", "Dover", "Newark"},
	"DC": {"Washington"},
	"FL": {"Jacksonville", "Miami", "Tampa", "Orlando", "St. Petersburg"},
	"GA": {"Atlanta", "Augusta", "Columbus", "Savannah"},
	"HI": {"Honolulu", "Hilo", "Kailua"},
	"ID": {"Boise", "Meridian", "Idaho Falls"},
	"IL": {"Chicago", "Aurora", "Naperville", "Springfield"},
	"IN": {"Indianapolis", "Fort Wayne", "Evansville", "South Bend"},
	"IA": {"Des Moines", "Cedar Rapids", "Davenport"},
	"KS": {"Wichita", "Overland Park", "Kansas City", "Topeka"},
	"KY": {"Louisville", "Lexington", "Bowling Green"},
	"LA": {"New Orleans", "Baton Rouge", "Shreveport", "Lafayette"},
	"ME": {"Portland", "Lewiston", "Bangor"},
	"MD": {"Baltimore", "Columbia", "Germantown", "Silver Spring"},
	"MA": {"Boston", "Worcester", "Springfield", "Cambridge"},
	"MI": {"Detroit", "Grand Rapids", "Warren", "Ann Arbor"},
	"MN": {"Minneapolis", "Saint Paul", "Rochester", "Duluth"},
	"MS": {"Jackson", "Gulfport", "Southaven"},
	"MO": {"Kansas City", "Saint Louis", "Springfield", "Columbia"},
	"MT": {"Billings", "Missoula", "Great Falls", "Bozeman"},
	"NE": {"Omaha", "Lincoln", "Bellevue"},
	"NV": {"Las Vegas", "Henderson", "Reno"},
	"NH": {"Manchester", "Nashua", "Concord"},
	"NJ": {"Newark", "Jersey City", "Paterson", "Edison"},
	"NM": {"Albuquerque", "Las Cruces", "Santa Fe"},
	"NY": {"New York", "Buffalo", "Rochester", "Syracuse", "Albany"},
	"NC": {"Charlotte", "Raleigh", "Greensboro", "Durham", "Winston-Salem"},
	"ND": {"Fargo", "Bismarck", "Grand Forks"},
	"OH": {"Columbus", "Cleveland", "Cincinnati", "Toledo", "Akron"},
	"OK": {"Oklahoma City", "Tulsa", "Norman"},
	"OR": {"Portland", "Salem", "Eugene", "Bend"},
	"PA": {"Philadelphia", "Pittsburgh", "Allentown", "Erie"},
	"RI": {"Providence", "Warwick", "Cranston"},
	"SC": {"Charleston", "Columbia", "North Charleston", "Greenville"},
	"SD": {"Sioux Falls", "Rapid City", "Aberdeen"},
	"TN": {"Nashville", "Memphis", "Knoxville", "Chattanooga"},
	"TX": {"Houston", "San Antonio", "Dallas", "Austin", "Fort Worth", "El Paso"},
	"UT": {"Salt Lake City", "West Valley City", "Provo", "St. George"},
	"VT": {"Burlington", "South Burlington", "Rutland"},
	"VA": {"Virginia Beach", "Norfolk", "Chesapeake", "Richmond", "Arlington"},
	"WA": {"Seattle", "Spokane", "Tacoma", "Vancouver", "Bellevue"},
	"WV": {"Charleston", "Huntington", "Morgantown"},
	"WI": {"Milwaukee", "Madison", "Green Bay", "Kenosha"},
	"WY": {"Cheyenne", "Casper", "Laramie"},
}
