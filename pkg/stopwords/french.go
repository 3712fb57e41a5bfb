package stopwords

// frenchBase is the default French stopword list. Entries are stored in
// their accented form; New normalizes them before use.
var frenchBase = []string{
	"a", "afin", "ai", "ainsi", "ans", "au", "aucun", "aucune", "aujourd",
	"auquel", "aura", "auront", "aussi", "autre", "autres", "aux", "auxquelles",
	"auxquels", "avaient", "avais", "avait", "avant", "avec", "avez", "avoir",
	"avons", "ayant", "bien", "car", "ce", "ceci", "cela", "celle", "celles",
	"celui", "cependant", "certain", "certaine", "certaines", "certains", "ces",
	"cet", "cette", "ceux", "chaque", "chez", "ci", "cinq", "combien", "comme",
	"comment", "d", "dans", "de", "depuis", "des", "desquelles", "desquels",
	"deux", "devant", "devrait", "dire", "doit", "donc", "dont", "du", "duquel",
	"elle", "elles", "en", "encore", "entre", "envers", "est", "et", "etaient",
	"etais", "etait", "etant", "ete", "etre", "eu", "eux", "fait", "faites",
	"fois", "font", "furent", "hors", "ici", "il", "ils", "je", "juste", "l",
	"la", "laquelle", "le", "lequel", "les", "lesquelles", "lesquels", "leur",
	"leurs", "lors", "lui", "là", "ma", "mais", "me", "mes", "mienne",
	"miennes", "moi", "moins", "mon", "mot", "même", "mêmes", "ne", "ni",
	"nommés", "nos", "notre", "nous", "nouveau", "on", "ont", "ou", "où",
	"par", "parce", "parmi", "parole", "pas", "pendant", "personne", "peu",
	"peut", "peuvent", "pièce", "plupart", "plus", "plusieurs", "pour",
	"pourquoi", "près", "puis", "qu", "quand", "que", "quel", "quelle",
	"quelles", "quels", "qui", "quoi", "sa", "sans", "se", "sera", "seront",
	"ses", "seulement", "si", "sien", "sienne", "soi", "soit", "sommes", "son",
	"sont", "sous", "soyez", "sur", "ta", "tandis", "te", "tellement", "tels",
	"tes", "toi", "ton", "tous", "tout", "toute", "toutes", "trois", "très",
	"tu", "un", "une", "valeur", "vers", "voie", "voient", "vont", "vos",
	"votre", "vous", "vu", "y", "à", "ça", "étaient", "état", "étions", "été",
	"être",
}
