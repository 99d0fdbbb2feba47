package letter

// The three letter bodies. Section order is fixed across variants: sender
// block, certified-mail notice, date, recipient block, subject, factual
// background, legal demand, payment demand, consequences, documentation,
// closing. Only tone, headings, and the response window change.

const standardText = `{{.TenantName}}
{{.ForwardingAddress}}
{{.TenantEmail}}

Sent via Certified Mail, Return Receipt Requested

{{.Date}}

{{.LandlordInfo}}

Re: Demand for Return of Security Deposit
Rental Property: {{.RentalAddress}}
Amount in Dispute: {{.DepositAmount}}

Dear Landlord,

FACTUAL BACKGROUND
On {{.DepositDate}}, I paid a security deposit of {{.DepositAmount}} for the above-referenced property. I returned possession, including keys, on {{.MoveOutDate}}. The premises were left in good condition, normal wear and tear excepted.

LEGAL DEMAND
Under {{.StateCode}} state law, specifically {{.Citation}}, a landlord must refund the full security deposit, or provide a written, itemized statement of lawful deductions, within {{.DeadlineDays}} {{.DeadlineLabel}} after the tenant delivers possession. Failure to comply may entitle a tenant to recover damages, court costs and reasonable attorney fees.

{{if .PastDue}}As of today, the statutory deadline of {{.DueDate}} has passed. I have received neither payment nor any written explanation of deductions.{{else}}The statutory deadline is {{.DueDate}}.{{end}}

DEMAND FOR PAYMENT
Please remit the full deposit of {{.DepositAmount}} no later than {{.RespondBy}} ({{.ResponseWindow}} from receipt of this letter). Payment options:

• Check mailed to my forwarding address above, or
• Electronic transfer (ACH/Zelle); email me to obtain routing details.

CONSEQUENCES OF NON-COMPLIANCE
If you fail to comply by the stated deadline, I will immediately pursue all remedies available, including:

• Filing suit in small-claims court;
• Seeking damages of up to {{.PenaltyAmount}} ({{.Multiplier}}x the deposit amount) as provided by {{.StateCode}} law;
• Recovering court costs and attorney fees; and
• Any additional relief the court deems appropriate.

DOCUMENTATION
Should you contend that any portion of the deposit is lawfully withheld, you must, by the same deadline, provide a detailed, written itemization of each deduction with supporting documentation, as expressly required by {{.Citation}}.

I prefer to resolve this matter amicably. Your prompt attention will avoid unnecessary legal action.

Please confirm receipt and advise of your payment method at {{.TenantEmail}}.

Thank you for your immediate cooperation.

Sincerely,



{{.TenantName}}
`

const firmText = `{{.TenantName}}
{{.ForwardingAddress}}
{{.TenantEmail}}

Sent via Certified Mail, Return Receipt Requested

{{.Date}}

{{.LandlordInfo}}

FINAL DEMAND FOR RETURN OF SECURITY DEPOSIT
Rental Property: {{.RentalAddress}}
Amount in Dispute: {{.DepositAmount}}

Dear Landlord,

FACTUAL BACKGROUND
On {{.DepositDate}}, I paid a security deposit of {{.DepositAmount}} for the above-referenced property. I returned possession on {{.MoveOutDate}}. This letter serves as a FINAL DEMAND for its immediate return.

VIOLATION OF STATE LAW
You are currently in violation of {{.StateCode}} state law ({{.Citation}}). The statutory deadline of {{.DueDate}}, {{.DeadlineDays}} {{.DeadlineLabel}} after my move-out date, expired {{.DaysOverdue}} days ago. I have received neither payment nor any written itemization of deductions.

FINAL DEMAND FOR PAYMENT
This is your final opportunity to resolve this matter without legal action. You have {{.ResponseWindow}} from receipt of this letter, until {{.RespondBy}}, to:

- Return the full deposit amount of {{.DepositAmount}}, OR
- Provide detailed written justification with supporting documentation for any deductions.

CONSEQUENCES OF NON-COMPLIANCE
If you fail to respond appropriately within the stated window, I will immediately file suit in small claims court seeking:

- Return of the full deposit amount ({{.DepositAmount}});
- Statutory damages of up to {{.PenaltyAmount}} ({{.Multiplier}}x the deposit amount);
- Court costs and attorney fees; and
- Any other relief the court deems appropriate.

DOCUMENTATION
Any deduction you assert must be supported, within the same window, by a detailed written itemization with supporting documentation, as expressly required by {{.Citation}}.

Contact me immediately at {{.TenantEmail}} to arrange return of my deposit.

Sincerely,



{{.TenantName}}

cc: File Copy - Legal Action Pending
`

const friendlyText = `{{.TenantName}}
{{.ForwardingAddress}}
{{.TenantEmail}}

Sent via Certified Mail, Return Receipt Requested

{{.Date}}

{{.LandlordInfo}}

Re: Request for Return of Security Deposit
Rental Property: {{.RentalAddress}}
Amount Requested: {{.DepositAmount}}

Dear Landlord,

I hope this letter finds you well. I am writing to request the return of my security deposit for the rental property listed above.

RENTAL DETAILS
I paid a security deposit of {{.DepositAmount}} on {{.DepositDate}} and moved out on {{.MoveOutDate}}, leaving the property in good condition with only normal wear and tear.

LEGAL REQUIREMENT
According to {{.StateCode}} state law ({{.Citation}}), security deposits must be returned within {{.DeadlineDays}} {{.DeadlineLabel}} of tenant move-out, unless there are legitimate deductions for damages beyond normal wear and tear. The statutory deadline for my deposit is {{.DueDate}}.

REQUEST
I would appreciate the return of my full deposit of {{.DepositAmount}} by {{.RespondBy}} ({{.ResponseWindow}} from receipt of this letter). A check mailed to my forwarding address above works well, or email me to arrange an electronic transfer.

If you believe any deductions are necessary, please provide me with a detailed written explanation and supporting documentation, as required by {{.Citation}}. For reference, {{.StateCode}} law provides for damages of up to {{.PenaltyAmount}} ({{.Multiplier}}x the deposit amount) when a deposit is wrongfully withheld, though I trust we can resolve this without any of that.

Please feel free to contact me at {{.TenantEmail}} if you have any questions or need additional information.

Thank you for your prompt attention to this matter.

Best regards,



{{.TenantName}}
`
