package emotion

import "github.com/tkondra/constella/internal/model"

// LexiconEntry maps a word to the emotion it carries and a base
// intensity in (0,1].
type LexiconEntry struct {
	Emotion   model.Emotion
	Intensity float64
}

// lexicon is the fixed emotion vocabulary. Hand-authored, not learned;
// words appear in their post-tokenization form (lowercase, punctuation
// stripped).
var lexicon = map[string]LexiconEntry{
	// joy
	"happy":       {model.EmotionJoy, 0.80},
	"happiness":   {model.EmotionJoy, 0.80},
	"joy":         {model.EmotionJoy, 0.90},
	"joyful":      {model.EmotionJoy, 0.90},
	"delighted":   {model.EmotionJoy, 0.85},
	"delight":     {model.EmotionJoy, 0.80},
	"cheerful":    {model.EmotionJoy, 0.75},
	"glad":        {model.EmotionJoy, 0.60},
	"pleased":     {model.EmotionJoy, 0.65},
	"love":        {model.EmotionJoy, 0.90},
	"loving":      {model.EmotionJoy, 0.80},
	"loved":       {model.EmotionJoy, 0.80},
	"adore":       {model.EmotionJoy, 0.85},
	"wonderful":   {model.EmotionJoy, 0.85},
	"amazing":     {model.EmotionJoy, 0.80},
	"excellent":   {model.EmotionJoy, 0.80},
	"great":       {model.EmotionJoy, 0.70},
	"good":        {model.EmotionJoy, 0.50},
	"smile":       {model.EmotionJoy, 0.60},
	"smiling":     {model.EmotionJoy, 0.60},
	"laugh":       {model.EmotionJoy, 0.70},
	"laughter":    {model.EmotionJoy, 0.70},
	"laughing":    {model.EmotionJoy, 0.70},
	"celebrate":   {model.EmotionJoy, 0.80},
	"celebration": {model.EmotionJoy, 0.75},
	"bliss":       {model.EmotionJoy, 0.95},
	"blissful":    {model.EmotionJoy, 0.95},
	"ecstatic":    {model.EmotionJoy, 1.00},
	"thrilled":    {model.EmotionJoy, 0.90},
	"fun":         {model.EmotionJoy, 0.65},
	"enjoy":       {model.EmotionJoy, 0.70},
	"enjoyed":     {model.EmotionJoy, 0.70},
	"beautiful":   {model.EmotionJoy, 0.70},
	"paradise":    {model.EmotionJoy, 0.80},
	"triumph":     {model.EmotionJoy, 0.80},
	"victory":     {model.EmotionJoy, 0.75},
	"grateful":    {model.EmotionJoy, 0.75},
	"gratitude":   {model.EmotionJoy, 0.75},
	"proud":       {model.EmotionJoy, 0.70},
	"radiant":     {model.EmotionJoy, 0.80},
	"sunshine":    {model.EmotionJoy, 0.65},

	// sadness
	"sad":         {model.EmotionSadness, 0.80},
	"sadness":     {model.EmotionSadness, 0.80},
	"unhappy":     {model.EmotionSadness, 0.75},
	"miserable":   {model.EmotionSadness, 0.90},
	"misery":      {model.EmotionSadness, 0.90},
	"depressed":   {model.EmotionSadness, 0.90},
	"depressing":  {model.EmotionSadness, 0.85},
	"gloomy":      {model.EmotionSadness, 0.70},
	"sorrow":      {model.EmotionSadness, 0.85},
	"sorrowful":   {model.EmotionSadness, 0.85},
	"grief":       {model.EmotionSadness, 0.95},
	"grieving":    {model.EmotionSadness, 0.90},
	"mourn":       {model.EmotionSadness, 0.85},
	"mourning":    {model.EmotionSadness, 0.85},
	"cry":         {model.EmotionSadness, 0.75},
	"crying":      {model.EmotionSadness, 0.80},
	"tears":       {model.EmotionSadness, 0.70},
	"weep":        {model.EmotionSadness, 0.80},
	"weeping":     {model.EmotionSadness, 0.80},
	"lonely":      {model.EmotionSadness, 0.75},
	"loneliness":  {model.EmotionSadness, 0.80},
	"heartbroken": {model.EmotionSadness, 0.95},
	"heartbreak":  {model.EmotionSadness, 0.90},
	"despair":     {model.EmotionSadness, 0.95},
	"hopeless":    {model.EmotionSadness, 0.90},
	"melancholy":  {model.EmotionSadness, 0.70},
	"regret":      {model.EmotionSadness, 0.65},
	"hurt":        {model.EmotionSadness, 0.65},
	"pain":        {model.EmotionSadness, 0.70},
	"painful":     {model.EmotionSadness, 0.75},
	"suffering":   {model.EmotionSadness, 0.85},
	"tragedy":     {model.EmotionSadness, 0.85},
	"tragic":      {model.EmotionSadness, 0.85},
	"loss":        {model.EmotionSadness, 0.65},
	"grim":        {model.EmotionSadness, 0.60},

	// anger
	"angry":       {model.EmotionAnger, 0.85},
	"anger":       {model.EmotionAnger, 0.80},
	"furious":     {model.EmotionAnger, 0.95},
	"fury":        {model.EmotionAnger, 0.95},
	"rage":        {model.EmotionAnger, 0.95},
	"raging":      {model.EmotionAnger, 0.90},
	"mad":         {model.EmotionAnger, 0.70},
	"hate":        {model.EmotionAnger, 0.90},
	"hated":       {model.EmotionAnger, 0.90},
	"hatred":      {model.EmotionAnger, 0.95},
	"annoyed":     {model.EmotionAnger, 0.50},
	"annoying":    {model.EmotionAnger, 0.50},
	"irritated":   {model.EmotionAnger, 0.55},
	"irritating":  {model.EmotionAnger, 0.55},
	"frustrated":  {model.EmotionAnger, 0.65},
	"frustrating": {model.EmotionAnger, 0.65},
	"frustration": {model.EmotionAnger, 0.65},
	"outrage":     {model.EmotionAnger, 0.85},
	"outraged":    {model.EmotionAnger, 0.90},
	"outrageous":  {model.EmotionAnger, 0.80},
	"resent":      {model.EmotionAnger, 0.70},
	"resentment":  {model.EmotionAnger, 0.70},
	"hostile":     {model.EmotionAnger, 0.75},
	"bitter":      {model.EmotionAnger, 0.60},
	"violent":     {model.EmotionAnger, 0.75},
	"betrayed":    {model.EmotionAnger, 0.75},
	"betrayal":    {model.EmotionAnger, 0.75},
	"disgusted":   {model.EmotionAnger, 0.65},
	"disgusting":  {model.EmotionAnger, 0.65},

	// fear
	"afraid":      {model.EmotionFear, 0.80},
	"scared":      {model.EmotionFear, 0.80},
	"terrified":   {model.EmotionFear, 0.95},
	"terror":      {model.EmotionFear, 0.95},
	"terrifying":  {model.EmotionFear, 0.90},
	"fear":        {model.EmotionFear, 0.80},
	"fearful":     {model.EmotionFear, 0.80},
	"frightened":  {model.EmotionFear, 0.85},
	"frightening": {model.EmotionFear, 0.80},
	"horror":      {model.EmotionFear, 0.90},
	"horrified":   {model.EmotionFear, 0.90},
	"horrible":    {model.EmotionFear, 0.75},
	"panic":       {model.EmotionFear, 0.85},
	"anxious":     {model.EmotionFear, 0.70},
	"anxiety":     {model.EmotionFear, 0.75},
	"worried":     {model.EmotionFear, 0.60},
	"worry":       {model.EmotionFear, 0.55},
	"nervous":     {model.EmotionFear, 0.60},
	"dread":       {model.EmotionFear, 0.85},
	"threat":      {model.EmotionFear, 0.65},
	"threatening": {model.EmotionFear, 0.70},
	"danger":      {model.EmotionFear, 0.70},
	"dangerous":   {model.EmotionFear, 0.70},
	"scary":       {model.EmotionFear, 0.70},
	"creepy":      {model.EmotionFear, 0.60},
	"alarmed":     {model.EmotionFear, 0.65},
	"alarming":    {model.EmotionFear, 0.65},

	// surprise
	"surprised":    {model.EmotionSurprise, 0.80},
	"surprise":     {model.EmotionSurprise, 0.75},
	"surprising":   {model.EmotionSurprise, 0.70},
	"astonished":   {model.EmotionSurprise, 0.90},
	"astonishing":  {model.EmotionSurprise, 0.85},
	"amazed":       {model.EmotionSurprise, 0.85},
	"astounded":    {model.EmotionSurprise, 0.90},
	"shocked":      {model.EmotionSurprise, 0.85},
	"shocking":     {model.EmotionSurprise, 0.80},
	"stunned":      {model.EmotionSurprise, 0.80},
	"stunning":     {model.EmotionSurprise, 0.70},
	"sudden":       {model.EmotionSurprise, 0.50},
	"suddenly":     {model.EmotionSurprise, 0.50},
	"unexpected":   {model.EmotionSurprise, 0.70},
	"unbelievable": {model.EmotionSurprise, 0.75},
	"incredible":   {model.EmotionSurprise, 0.70},
	"startled":     {model.EmotionSurprise, 0.75},
	"remarkable":   {model.EmotionSurprise, 0.60},
	"wow":          {model.EmotionSurprise, 0.60},

	// anticipation
	"anticipate":   {model.EmotionAnticipation, 0.70},
	"anticipation": {model.EmotionAnticipation, 0.75},
	"expect":       {model.EmotionAnticipation, 0.50},
	"expectation":  {model.EmotionAnticipation, 0.55},
	"await":        {model.EmotionAnticipation, 0.60},
	"awaiting":     {model.EmotionAnticipation, 0.60},
	"eager":        {model.EmotionAnticipation, 0.75},
	"eagerly":      {model.EmotionAnticipation, 0.75},
	"hope":         {model.EmotionAnticipation, 0.70},
	"hopeful":      {model.EmotionAnticipation, 0.75},
	"hoping":       {model.EmotionAnticipation, 0.70},
	"excited":      {model.EmotionAnticipation, 0.80},
	"excitement":   {model.EmotionAnticipation, 0.80},
	"exciting":     {model.EmotionAnticipation, 0.75},
	"dream":        {model.EmotionAnticipation, 0.60},
	"dreaming":     {model.EmotionAnticipation, 0.60},
	"yearn":        {model.EmotionAnticipation, 0.70},
	"yearning":     {model.EmotionAnticipation, 0.70},
	"longing":      {model.EmotionAnticipation, 0.65},
	"curious":      {model.EmotionAnticipation, 0.65},
	"curiosity":    {model.EmotionAnticipation, 0.65},
	"wish":         {model.EmotionAnticipation, 0.55},
	"wishing":      {model.EmotionAnticipation, 0.55},
	"waiting":      {model.EmotionAnticipation, 0.50},
	"soon":         {model.EmotionAnticipation, 0.40},
	"tomorrow":     {model.EmotionAnticipation, 0.45},
}

// negations flip the sign of the next emotional word's contribution.
// Tokenization strips apostrophes, so contractions appear collapsed.
var negations = map[string]bool{
	"no": true, "not": true, "never": true, "none": true,
	"neither": true, "nor": true, "cannot": true, "cant": true,
	"dont": true, "doesnt": true, "didnt": true, "wont": true,
	"wouldnt": true, "couldnt": true, "shouldnt": true, "isnt": true,
	"wasnt": true, "arent": true, "werent": true, "aint": true,
	"without": true, "hardly": true, "barely": true, "scarcely": true,
}

// intensifiers scale the next emotional word's contribution. Values
// below 1 are diminishers.
var intensifiers = map[string]float64{
	"very":          1.5,
	"extremely":     2.0,
	"incredibly":    1.8,
	"really":        1.4,
	"so":            1.3,
	"totally":       1.6,
	"absolutely":    1.9,
	"completely":    1.7,
	"utterly":       1.8,
	"deeply":        1.6,
	"profoundly":    1.8,
	"truly":         1.5,
	"remarkably":    1.6,
	"exceptionally": 1.9,
	"immensely":     1.8,
	"intensely":     1.7,
	"quite":         1.2,
	"rather":        1.15,
	"somewhat":      0.7,
	"slightly":      0.5,
	"mildly":        0.6,
}

// emojiWeights maps emoji code points to a signed influence weight.
// Positive weights nudge joy/anticipation, negative ones sadness/fear.
// Variation selectors are ignored during the scan, so only base code
// points appear here.
var emojiWeights = map[rune]float64{
	'😀': 0.7, '😃': 0.7, '😄': 0.8, '😁': 0.7, '🙂': 0.4,
	'😊': 0.6, '🥰': 0.9, '😍': 0.9, '😂': 0.6, '🤣': 0.7,
	'😎': 0.5, '🎉': 0.8, '✨': 0.5, '🌟': 0.5, '👍': 0.5,
	'❤': 0.8, '💕': 0.7, '🔥': 0.4,

	'😢': -0.7, '😭': -0.8, '😞': -0.6, '😔': -0.6, '😟': -0.5,
	'😰': -0.6, '😨': -0.7, '😱': -0.8, '😡': -0.8, '😠': -0.7,
	'💔': -0.8, '👎': -0.5, '😣': -0.5, '😖': -0.5, '😿': -0.6,
	'☹': -0.5, '🙁': -0.4,
}

// validateTables panics on a corrupted fixed table. A bad table is a
// programming defect, surfaced at construction rather than silently
// defaulted at scoring time.
func validateTables() {
	for word, entry := range lexicon {
		if entry.Intensity <= 0 || entry.Intensity > 1 {
			panic("emotion: lexicon intensity out of (0,1] for " + word)
		}
		if entry.Emotion < 0 || int(entry.Emotion) >= model.EmotionCount {
			panic("emotion: lexicon emotion out of range for " + word)
		}
	}
	for word, mult := range intensifiers {
		if mult <= 0 {
			panic("emotion: non-positive intensifier multiplier for " + word)
		}
	}
}
