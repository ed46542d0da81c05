package slop

// Phrases is the fixed dictionary of ChatGPT-style filler phrases. Matching
// is case-insensitive substring matching; each entry counts at most once per
// text no matter how often it repeats.
var Phrases = []string{
	"in today's digital landscape",
	"in today's fast-paced",
	"in today's world",
	"in the ever-evolving",
	"in this comprehensive guide",
	"dive into",
	"let's dive",
	"deep dive",
	"delve into",
	"let's delve",
	"it's worth noting",
	"it's important to note",
	"navigating the",
	"navigate the complexities",
	"unlock the power",
	"unlock the potential",
	"unleash the power",
	"harness the power",
	"the power of",
	"game.changer",
	"game changer",
	"a must-have",
	"revolutionize",
	"elevate your",
	"supercharge your",
	"streamline your",
	"seamlessly",
	"robust and scalable",
	"cutting-edge",
	"leverage the",
	"leveraging",
	"look no further",
	"buckle up",
	"without further ado",
	"comprehensive overview",
	"at the end of the day",
	"the bottom line",
	"in conclusion",
	"to sum up",
	"tapestry",
	"paradigm",
	"synergy",
	"holistic approach",
	"foster a",
	"foster an",
	"multifaceted",
	"pivotal role",
	"in the realm of",
	"landscape of",
	"embark on",
	"let's explore",
	"are you looking for",
	"whether you're a",
	"empower you",
	"empowering",
	"step-by-step guide",
	"everything you need to know",
	"here's the thing",
	"here's the deal",
	"the secret sauce",
	"not just any",
	"ready to take your",
	"take it to the next level",
	"next level",
	"level up your",
	"your journey",
	"stands out from the crowd",
	"stay ahead of the curve",
	"in this article",
	"in this blog post",
	"welcome to our",
}

// hypeEmojis are counted individually for the hype signal. The star is
// outside the general emoji ranges but still counts here.
var hypeEmojis = map[rune]struct{}{
	'\U0001F680': {}, // rocket
	'✅':     {}, // check mark
	'\U0001F525': {}, // fire
	'\U0001F4A1': {}, // light bulb
	'\U0001F3AF': {}, // dart
	'⭐':     {}, // star
	'\U0001F4AA': {}, // flexed biceps
	'\U0001F3C6': {}, // trophy
	'\U0001F31F': {}, // glowing star
	'\U0001F4A5': {}, // collision
	'✨':     {}, // sparkles
	'\U0001F389': {}, // party popper
}
