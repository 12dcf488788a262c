package render

const cvModernTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.PersonalInfo.FirstName}} {{.PersonalInfo.LastName}} - CV</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Arial', sans-serif; line-height: 1.6; color: #333; max-width: 800px; margin: 0 auto; padding: 20px; }
        h1 { color: #2c3e50; border-bottom: 3px solid #3498db; padding-bottom: 10px; margin-bottom: 20px; }
        h2 { color: #34495e; margin-top: 30px; margin-bottom: 15px; border-bottom: 2px solid #ecf0f1; padding-bottom: 5px; }
        h3 { color: #7f8c8d; margin-top: 15px; }
        .contact-info { margin-bottom: 20px; }
        .contact-info p { margin: 5px 0; }
        .section { margin-bottom: 30px; }
        .item { margin-bottom: 20px; }
        .item-header { display: flex; justify-content: space-between; align-items: baseline; margin-bottom: 5px; }
        .item-title { font-weight: bold; color: #2c3e50; }
        .item-subtitle { color: #7f8c8d; font-style: italic; }
        .item-date { color: #95a5a6; font-size: 0.9em; }
        .skill-list, .language-list { display: flex; flex-wrap: wrap; gap: 10px; }
        .skill-item, .language-item { background: #ecf0f1; padding: 5px 15px; border-radius: 20px; }
        @media print { body { padding: 0; } }
    </style>
</head>
<body>
    <header>
        <h1>{{.PersonalInfo.FirstName}} {{.PersonalInfo.LastName}}</h1>
        <div class="contact-info">
            <p><strong>Email:</strong> {{.PersonalInfo.Email}}</p>
            <p><strong>Phone:</strong> {{.PersonalInfo.Phone}}</p>
            <p><strong>Address:</strong> {{.PersonalInfo.Address}}</p>
        </div>
        {{with .PersonalInfo.Summary}}<p><strong>Summary:</strong> {{.}}</p>{{end}}
    </header>

    {{if .Experiences}}
    <section class="section">
        <h2>Experience</h2>
        {{range .Experiences}}
        <div class="item">
            <div class="item-header">
                <div>
                    <div class="item-title">{{.Title}}</div>
                    <div class="item-subtitle">{{.Company}} - {{.Location}}</div>
                </div>
                <div class="item-date">{{.StartDate}} - {{if .Current}}Present{{else}}{{.EndDate}}{{end}}</div>
            </div>
            <p>{{.Description}}</p>
        </div>
        {{end}}
    </section>
    {{end}}

    {{if .Education}}
    <section class="section">
        <h2>Education</h2>
        {{range .Education}}
        <div class="item">
            <div class="item-header">
                <div>
                    <div class="item-title">{{.Degree}}</div>
                    <div class="item-subtitle">{{.School}} - {{.Location}}</div>
                </div>
                <div class="item-date">{{.StartDate}} - {{if .Current}}Present{{else}}{{.EndDate}}{{end}}</div>
            </div>
            <p>{{.Description}}</p>
        </div>
        {{end}}
    </section>
    {{end}}

    {{if .Skills}}
    <section class="section">
        <h2>Skills</h2>
        <div class="skill-list">
            {{range .Skills}}<span class="skill-item">{{.Name}} ({{.Level}})</span>{{end}}
        </div>
    </section>
    {{end}}

    {{if .Languages}}
    <section class="section">
        <h2>Languages</h2>
        <div class="language-list">
            {{range .Languages}}<span class="language-item">{{.Name}} ({{.Level}})</span>{{end}}
        </div>
    </section>
    {{end}}
</body>
</html>`

const cvClassicTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.PersonalInfo.FirstName}} {{.PersonalInfo.LastName}} - CV</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: 'Times New Roman', serif; line-height: 1.8; color: #000; max-width: 800px; margin: 0 auto; padding: 30px; background: #fff; }
        h1 { color: #000; text-align: center; font-size: 2.5em; margin-bottom: 10px; text-transform: uppercase; letter-spacing: 2px; }
        h2 { color: #000; margin-top: 25px; margin-bottom: 10px; font-size: 1.3em; text-transform: uppercase; border-bottom: 1px solid #000; padding-bottom: 3px; }
        .contact-info { text-align: center; margin-bottom: 25px; font-size: 0.95em; }
        .contact-info p { margin: 3px 0; }
        .section { margin-bottom: 25px; }
        .item { margin-bottom: 18px; }
        .item-header { margin-bottom: 5px; }
        .item-title { font-weight: bold; font-size: 1.1em; }
        .item-subtitle { font-style: italic; margin-top: 2px; }
        .item-date { font-size: 0.9em; margin-top: 2px; }
        .skill-list, .language-list { margin-top: 8px; }
        .skill-item, .language-item { display: inline-block; margin-right: 15px; margin-bottom: 5px; }
        @media print { body { padding: 10px; } }
    </style>
</head>
<body>
    <header>
        <h1>{{.PersonalInfo.FirstName}} {{.PersonalInfo.LastName}}</h1>
        <div class="contact-info">
            <p>{{.PersonalInfo.Email}} | {{.PersonalInfo.Phone}} | {{.PersonalInfo.Address}}</p>
        </div>
        {{with .PersonalInfo.Summary}}<p style="text-align: center; margin-bottom: 20px;">{{.}}</p>{{end}}
    </header>

    {{if .Experiences}}
    <section class="section">
        <h2>Professional Experience</h2>
        {{range .Experiences}}
        <div class="item">
            <div class="item-header">
                <div class="item-title">{{.Title}}</div>
                <div class="item-subtitle">{{.Company}}, {{.Location}}</div>
                <div class="item-date">{{.StartDate}} - {{if .Current}}Present{{else}}{{.EndDate}}{{end}}</div>
            </div>
            <p>{{.Description}}</p>
        </div>
        {{end}}
    </section>
    {{end}}

    {{if .Education}}
    <section class="section">
        <h2>Education</h2>
        {{range .Education}}
        <div class="item">
            <div class="item-header">
                <div class="item-title">{{.Degree}}</div>
                <div class="item-subtitle">{{.School}}, {{.Location}}</div>
                <div class="item-date">{{.StartDate}} - {{if .Current}}Present{{else}}{{.EndDate}}{{end}}</div>
            </div>
            <p>{{.Description}}</p>
        </div>
        {{end}}
    </section>
    {{end}}

    {{if .Skills}}
    <section class="section">
        <h2>Skills</h2>
        <div class="skill-list">
            {{range .Skills}}<span class="skill-item">{{.Name}} ({{.Level}})</span>{{end}}
        </div>
    </section>
    {{end}}

    {{if .Languages}}
    <section class="section">
        <h2>Languages</h2>
        <div class="language-list">
            {{range .Languages}}<span class="language-item">{{.Name}} ({{.Level}})</span>{{end}}
        </div>
    </section>
    {{end}}
</body>
</html>`
