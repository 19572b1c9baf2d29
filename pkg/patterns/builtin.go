package patterns

// builtinTables holds the raw built-in pattern sources per language and
// category. Patterns are matched case-insensitively with word boundaries
// already encoded in the expressions; text is expected in its accent-stripped
// mesh-transport form, which is why the tables carry no diacritics.
var builtinTables = map[Language]map[Category][]string{
	LangSpanish: {
		CategoryUrgency: {
			`\b(urgente|ahora mismo|inmediatamente|ya|rapido|prisa)\b`,
			`\b(antes de que sea tarde|ultima oportunidad|tiempo limitado)\b`,
			`\b(no hay tiempo|actua ya|hazlo ahora)\b`,
		},
		CategoryFear: {
			`\b(peligro|amenaza|riesgo|cuidado|alerta)\b`,
			`\b(te van a|van a venir|te buscan|te persiguen)\b`,
			`\b(desastre|catastrofe|destruccion|muerte)\b`,
		},
		CategoryAuthority: {
			`\b(autoridad|gobierno|oficial|militar|policia)\b`,
			`\b(orden de|mandato|decreto|ley)\b`,
			`\b(debes obedecer|tienes que|obligatorio)\b`,
		},
		CategoryIsolation: {
			`\b(no confies|solo yo|nadie mas|los demas mienten)\b`,
			`\b(ellos no entienden|solo nosotros|secreto entre)\b`,
			`\b(no le digas a nadie|entre tu y yo)\b`,
		},
		CategoryFlattery: {
			`\b(eres especial|solo tu puedes|elegido|unico)\b`,
			`\b(confio solo en ti|eres el mejor|increible)\b`,
			`\b(nadie como tu|extraordinario)\b`,
		},
		CategoryCoercion: {
			`\b(si no lo haces|consecuencias|arrepentiras)\b`,
			`\b(obligado a|forzado a|sin opcion)\b`,
			`\b(o esto o|ultima advertencia)\b`,
		},
		CategoryMisinformation: {
			`\b(la verdad es que|lo que no te dicen|secreto)\b`,
			`\b(todos saben|es obvio que|claramente)\b`,
			`\b(fuentes confirman|se ha confirmado)\b`,
		},
		CategorySurrender: {
			`\b(rendirse|entregarse|capitular|abandonar)\b`,
			`\b(es inutil|no tiene sentido|perdieron)\b`,
			`\b(derrota|derrotado|vencido)\b`,
		},
	},
	LangEnglish: {
		CategoryUrgency: {
			`\b(urgent|right now|immediately|hurry|quick|asap)\b`,
			`\b(before it's too late|last chance|limited time)\b`,
			`\b(no time|act now|do it now)\b`,
		},
		CategoryFear: {
			`\b(danger|threat|risk|warning|alert)\b`,
			`\b(they will|coming for you|looking for you)\b`,
			`\b(disaster|catastrophe|destruction|death)\b`,
		},
		CategoryAuthority: {
			`\b(authority|government|official|military|police)\b`,
			`\b(order from|mandate|decree|law)\b`,
			`\b(must obey|have to|mandatory|required)\b`,
		},
		CategoryIsolation: {
			`\b(don't trust|only I|no one else|others lie)\b`,
			`\b(they don't understand|only us|secret between)\b`,
			`\b(don't tell anyone|between you and me)\b`,
		},
		CategoryFlattery: {
			`\b(you're special|only you can|chosen|unique)\b`,
			`\b(trust only you|you're the best|amazing)\b`,
			`\b(no one like you|extraordinary)\b`,
		},
		CategoryCoercion: {
			`\b(if you don't|consequences|regret)\b`,
			`\b(forced to|no choice|must comply)\b`,
			`\b(either this or|final warning)\b`,
		},
		CategoryMisinformation: {
			`\b(the truth is|what they don't tell|secret)\b`,
			`\b(everyone knows|obviously|clearly)\b`,
			`\b(sources confirm|has been confirmed)\b`,
		},
		CategorySurrender: {
			`\b(surrender|give up|capitulate|abandon)\b`,
			`\b(it's useless|pointless|you lost)\b`,
			`\b(defeat|defeated|beaten)\b`,
		},
	},
	LangPortuguese: {
		CategoryUrgency: {
			`\b(urgente|agora mesmo|imediatamente|ja|rapido|pressa)\b`,
			`\b(antes que seja tarde|ultima chance|tempo limitado)\b`,
			`\b(nao ha tempo|age agora|faz agora)\b`,
		},
		CategoryFear: {
			`\b(perigo|ameaca|risco|cuidado|alerta)\b`,
			`\b(vao te|vem ai|te procuram|te perseguem)\b`,
			`\b(desastre|catastrofe|destruicao|morte)\b`,
		},
		CategoryAuthority: {
			`\b(autoridade|governo|oficial|militar|policia)\b`,
			`\b(ordem de|mandato|decreto|lei)\b`,
			`\b(deve obedecer|tem que|obrigatorio)\b`,
		},
		CategoryIsolation: {
			`\b(nao confie|so eu|ninguem mais|outros mentem)\b`,
			`\b(eles nao entendem|so nos|segredo entre)\b`,
			`\b(nao diga a ninguem|entre voce e eu)\b`,
		},
		CategoryFlattery: {
			`\b(voce e especial|so voce pode|escolhido|unico)\b`,
			`\b(confio so em voce|voce e o melhor|incrivel)\b`,
			`\b(ninguem como voce|extraordinario)\b`,
		},
		CategoryCoercion: {
			`\b(se nao fizer|consequencias|arrepender)\b`,
			`\b(obrigado a|forcado a|sem opcao)\b`,
			`\b(ou isso ou|ultimo aviso)\b`,
		},
		CategoryMisinformation: {
			`\b(a verdade e que|o que nao te dizem|segredo)\b`,
			`\b(todos sabem|e obvio que|claramente)\b`,
			`\b(fontes confirmam|foi confirmado)\b`,
		},
		CategorySurrender: {
			`\b(render|entregar|capitular|abandonar)\b`,
			`\b(e inutil|nao tem sentido|perderam)\b`,
			`\b(derrota|derrotado|vencido)\b`,
		},
	},
}
